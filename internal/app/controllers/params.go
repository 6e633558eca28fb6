package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Endpoint parameters arrive in the query string or the form body,
// never as request-body JSON. Query wins when both are present.

func paramValue(c *gin.Context, name string) (string, bool) {
	if v, ok := c.GetQuery(name); ok {
		return v, true
	}
	if v, ok := c.GetPostForm(name); ok {
		return v, true
	}
	return "", false
}

func requiredInt64(c *gin.Context, name string) (int64, error) {
	raw, ok := paramValue(c, name)
	if !ok {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", name)
	}
	return v, nil
}

func optionalInt64(c *gin.Context, name string) (*int64, error) {
	raw, ok := paramValue(c, name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid number", name)
	}
	return &v, nil
}

func optionalFloat64(c *gin.Context, name string) (*float64, error) {
	raw, ok := paramValue(c, name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid number", name)
	}
	return &v, nil
}

func optionalBool(c *gin.Context, name string) (*bool, error) {
	raw, ok := paramValue(c, name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid boolean", name)
	}
	return &v, nil
}

func optionalString(c *gin.Context, name string) *string {
	raw, ok := paramValue(c, name)
	if !ok {
		return nil
	}
	return &raw
}
