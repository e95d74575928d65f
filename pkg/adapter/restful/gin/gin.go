package gin

import "github.com/gin-gonic/gin"

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// New instantiates an engine with the given middlewares. The JSON
// bodies decoder is configured to reject unknown fields, so a request
// carrying fields beyond the documented ones fails instead of being
// silently accepted in part.
func New(middlewares ...HandlerFunc) *Engine {
	gin.EnableJsonDecoderDisallowUnknownFields()
	e := gin.New()
	e.Use(middlewares...)
	return e
}

func Logger() HandlerFunc {
	return gin.Logger()
}

func Recovery() HandlerFunc {
	return gin.Recovery()
}
