package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/sagarhutagi/ai-code-doctor/internal/api/middleware"
	"github.com/sagarhutagi/ai-code-doctor/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/").
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/").
			To(handler.Status).
			Doc("Liveness status").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(models.StatusResponse{}).
			Returns(200, "OK", models.StatusResponse{}))

	ws.
		Route(ws.GET("/models").
			To(handler.Models).
			Doc("List installed models, default first").
			Metadata(restfulspec.KeyOpenAPITags, []string{"models"}).
			Writes(models.ModelsResponse{}).
			Returns(200, "OK", models.ModelsResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}).
			Returns(503, "Service Unavailable", middleware.ErrorResponse{}).
			Returns(504, "Gateway Timeout", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/actions").
			To(handler.Actions).
			Doc("List preset question actions").
			Metadata(restfulspec.KeyOpenAPITags, []string{"actions"}).
			Writes(models.ActionsResponse{}).
			Returns(200, "OK", models.ActionsResponse{}))

	ws.
		Route(ws.POST("/ask").
			To(handler.Ask).
			Doc("Ask a question about an uploaded code file").
			Metadata(restfulspec.KeyOpenAPITags, []string{"ask"}).
			Consumes("multipart/form-data").
			Param(ws.FormParameter("file", "Code file (UTF-8 text, size-bounded)").DataType("file").Required(true)).
			Param(ws.FormParameter("question", "Question or preset action prompt").DataType("string").Required(false)).
			Param(ws.FormParameter("model", "Model name, configured default when omitted").DataType("string").Required(false)).
			Writes(models.AskResponse{}).
			Returns(200, "OK", models.AskResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(413, "Request Entity Too Large", middleware.ErrorResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}).
			Returns(503, "Service Unavailable", middleware.ErrorResponse{}).
			Returns(504, "Gateway Timeout", middleware.ErrorResponse{}))

	container.Add(ws)
}
