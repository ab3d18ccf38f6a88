package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/talentwire/article-service/internal/apperr"
	"github.com/talentwire/article-service/internal/logger"
	"github.com/talentwire/article-service/internal/services"
	"github.com/talentwire/article-service/internal/types"
)

type ArticleHandler struct {
	log            *logger.Logger
	articleService services.ArticleService
}

func NewArticleHandler(log *logger.Logger, articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		log:            log.With("handler", "ArticleHandler"),
		articleService: articleService,
	}
}

// POST /api/v1/html/generate
// Generate an HTML article, store it and return the public URL.
func (h *ArticleHandler) Generate(c *gin.Context) {
	var req types.GenerateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apperr.CodeValidation, err)
		return
	}

	resp, err := h.articleService.GenerateHTML(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Generate failed", "error", err, "article_type", string(req.ArticleType))
		RespondAppError(c, err)
		return
	}
	RespondOK(c, resp)
}

// GET /api/v1/html/:id
// Article metadata by id; the content itself lives behind public_url.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, types.NewArticleResponse(article))
}

// GET /api/v1/html?limit=&offset=
func (h *ArticleHandler) List(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 50)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}

	articles, err := h.articleService.ListArticles(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Error("List failed", "error", err)
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"articles": toResponses(articles)})
}

// GET /api/v1/html/entity/:source_entity_id?format_type=
// Articles generated for one owning entity, newest first.
func (h *ArticleHandler) GetBySourceEntity(c *gin.Context) {
	sourceEntityID, ok := pathID(c, "source_entity_id")
	if !ok {
		return
	}

	formatType := types.FormatType(c.Query("format_type"))
	if formatType != "" && !formatType.Valid() {
		RespondError(c, http.StatusBadRequest, apperr.CodeValidation,
			fmt.Errorf("unknown format_type %q", string(formatType)))
		return
	}

	articles, err := h.articleService.GetBySourceEntity(c.Request.Context(), sourceEntityID, formatType)
	if err != nil {
		h.log.Error("GetBySourceEntity failed", "error", err, "source_entity_id", sourceEntityID)
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"articles": toResponses(articles)})
}

// DELETE /api/v1/html/:id
// Administrative cleanup: removes the metadata row and the stored object.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), id); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func toResponses(articles []*types.Article) []types.ArticleResponse {
	out := make([]types.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, types.NewArticleResponse(a))
	}
	return out
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, apperr.CodeValidation,
			fmt.Errorf("invalid %s %q", name, c.Param(name)))
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		RespondError(c, http.StatusBadRequest, apperr.CodeValidation,
			fmt.Errorf("invalid %s %q", name, raw))
		return 0, false
	}
	return v, true
}
