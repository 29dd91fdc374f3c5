package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
)

// ValidatedQueryKey is the context key holding the bound query object
const ValidatedQueryKey = "validatedQuery"

// BindQuery binds and validates the query string into a fresh T and stores
// it under ValidatedQueryKey.
func BindQuery[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var obj T
		if err := c.ShouldBindQuery(&obj); err != nil {
			errorDetail := dto.HandleValidationError(err)
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Set(ValidatedQueryKey, &obj)
		c.Next()
	}
}

// ValidatedQuery returns the object stored by BindQuery
func ValidatedQuery[T any](c *gin.Context) (*T, bool) {
	v, ok := c.Get(ValidatedQueryKey)
	if !ok {
		return nil, false
	}
	obj, ok := v.(*T)
	return obj, ok
}
