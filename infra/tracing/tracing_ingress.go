package tracing

import (
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

func TracingIngress() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tracer := opentracing.GlobalTracer()
		spanCtx, _ := tracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(ctx.Request.Header))
		serverSpan := tracer.StartSpan(operationName(ctx), ext.RPCServerOption(spanCtx))
		defer serverSpan.Finish()

		ext.HTTPMethod.Set(serverSpan, ctx.Request.Method)
		ext.HTTPUrl.Set(serverSpan, ctx.Request.RequestURI)
		ctx.Request = ctx.Request.WithContext(opentracing.ContextWithSpan(ctx.Request.Context(), serverSpan))

		ctx.Next()

		status := ctx.Writer.Status()
		ext.HTTPStatusCode.Set(serverSpan, uint16(status))
		if status >= 500 {
			ext.Error.Set(serverSpan, true)
		}
	}
}

// operationName prefers the route template so that /v1/work-orders/WO-1 and /v1/work-orders/WO-2 share a name.
func operationName(ctx *gin.Context) string {
	path := ctx.FullPath()
	if path == "" {
		path = ctx.Request.RequestURI
	}
	return ctx.Request.Method + " " + path
}
