package httpresp

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Success(c *gin.Context) {
	c.JSON(200, gin.H{"success": true})
}
