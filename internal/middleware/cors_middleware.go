package middleware

import "github.com/gin-gonic/gin"

// CORSHeaders are attached to every response.
var CORSHeaders = map[string]string{
	"access-control-allow-origin":  "*",
	"access-control-allow-methods": "GET, POST, PUT, DELETE, OPTIONS",
	"access-control-allow-headers": "content-type, accept",
	"access-control-max-age":       "10", // seconds
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		for key, value := range CORSHeaders {
			header.Set(key, value)
		}
		c.Next()
	}
}
