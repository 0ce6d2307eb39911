package api

import (
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/apperror"
)

// PathUint binds the simple-style path parameter name as a positive integer.
func PathUint(c *gin.Context, name string) (uint, error) {
	var v uint
	if err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, c.Param(name), &v); err != nil {
		return 0, apperror.Validation("invalid path parameter %s", name)
	}
	if v == 0 {
		return 0, apperror.Validation("invalid path parameter %s", name)
	}
	return v, nil
}

// PathString binds the path parameter name as a non-empty string.
func PathString(c *gin.Context, name string) (string, error) {
	var v string
	if err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, c.Param(name), &v); err != nil || v == "" {
		return "", apperror.Validation("invalid path parameter %s", name)
	}
	return v, nil
}

// QueryInt binds the optional form-style query parameter name. def is
// returned when the parameter is absent.
func QueryInt(c *gin.Context, name string, def int) (int, error) {
	v := def
	if err := runtime.BindQueryParameter("form", true, false, name, c.Request.URL.Query(), &v); err != nil {
		return 0, apperror.Validation("invalid query parameter %s", name)
	}
	return v, nil
}

// QueryString binds the optional query parameter name. A repeated parameter
// is rejected.
func QueryString(c *gin.Context, name string) (string, error) {
	var v string
	if err := runtime.BindQueryParameter("form", true, false, name, c.Request.URL.Query(), &v); err != nil {
		return "", apperror.Validation("invalid query parameter %s", name)
	}
	return v, nil
}

// Page is a 1-based page request.
type Page struct {
	Page     int
	PageSize int
}

// QueryPage reads page and pageSize. Range checks are left to the usecases.
func QueryPage(c *gin.Context) (Page, error) {
	page, err := QueryInt(c, "page", 0)
	if err != nil {
		return Page{}, err
	}
	size, err := QueryInt(c, "pageSize", 0)
	if err != nil {
		return Page{}, err
	}
	return Page{Page: page, PageSize: size}, nil
}
