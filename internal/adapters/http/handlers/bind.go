package handlers

import (
	"bytes"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var ErrEmptyBody = errors.New("request body is empty")

// BindJSONBody decodes the request body into obj. A missing body and a literal
// JSON null both yield ErrEmptyBody.
func BindJSONBody(c *gin.Context, obj any) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return ErrEmptyBody
	}

	return binding.JSON.BindBody(body, obj)
}
