package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/multitarefa/cadastro-api/internal/logging"
	"github.com/multitarefa/cadastro-api/internal/middleware"
	"github.com/multitarefa/cadastro-api/internal/models"
	"github.com/multitarefa/cadastro-api/internal/observability"
	"github.com/multitarefa/cadastro-api/internal/services"
	"github.com/multitarefa/cadastro-api/internal/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// User-facing messages of the cadastro endpoints
const (
	msgInvalidData    = "Dados inválidos."
	msgListFailed     = "Erro ao buscar cadastros."
	msgGetFailed      = "Erro ao buscar cadastro."
	msgCreateFailed   = "Erro ao salvar cadastro."
	msgUpdateFailed   = "Erro ao atualizar cadastro."
	msgDeleteFailed   = "Erro ao deletar cadastro."
	msgUpdated        = "Cadastro atualizado com sucesso."
	msgDeleted        = "Cadastro deletado com sucesso."
	msgConcurrency    = "Houve um conflito de concorrência."
	msgNotFoundFormat = "Cadastro com ID %d não encontrado."
)

// CadastroHandlers handles the /api/cadastro endpoints
type CadastroHandlers struct {
	service *services.CadastroService
	sink    observability.Sink
	logger  *logging.SafeLogger
}

// NewCadastroHandlers creates a new cadastro handlers instance
func NewCadastroHandlers(service *services.CadastroService, sink observability.Sink, logger *logging.SafeLogger) *CadastroHandlers {
	return &CadastroHandlers{
		service: service,
		sink:    sink,
		logger:  logger.Named("cadastro_handlers"),
	}
}

// RegisterRoutes mounts the cadastro endpoints on group
func (h *CadastroHandlers) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.ListCadastros)
	group.GET("/:id", h.GetCadastro)
	group.POST("", h.CreateCadastro)
	group.PUT("/:id", h.UpdateCadastro)
	group.DELETE("/:id", h.DeleteCadastro)
}

// ListCadastros godoc
// @Summary Listar cadastros
// @Description Recupera uma página de cadastros ordenados por id
// @Tags cadastro
// @Produce json
// @Param page query int false "Número da página (padrão: 1)" minimum(1)
// @Param pageSize query int false "Itens por página (padrão: 10, máximo: 100)" minimum(1) maximum(100)
// @Success 200 {object} CadastroListResponse "Página de cadastros"
// @Failure 400 {object} models.Envelope "Parâmetros inválidos"
// @Failure 500 {object} models.Envelope "Erro interno do servidor"
// @Router /api/cadastro [get]
func (h *CadastroHandlers) ListCadastros(c *gin.Context) {
	startTime := requestStart(c)
	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("operation", "list_cadastros"))
	defer utils.AddTimingToSpan(span, startTime)

	_, paginationSpan := utils.TraceInputParsing(ctx, "pagination_parameters")
	pagination, err := services.ParsePagination(c.Query("page"), c.Query("pageSize"))
	if err != nil {
		utils.RecordErrorInSpan(paginationSpan, err, map[string]interface{}{
			"page_param":      c.Query("page"),
			"page_size_param": c.Query("pageSize"),
		})
		paginationSpan.End()
		h.respondError(c, err, msgListFailed, 0)
		return
	}
	utils.AddSpanAttribute(paginationSpan, "page", pagination.Page)
	utils.AddSpanAttribute(paginationSpan, "page_size", pagination.PageSize)
	paginationSpan.End()

	logicCtx, logicSpan := utils.TraceBusinessLogic(ctx, "list_cadastros")
	cadastros, err := h.service.List(logicCtx, pagination)
	if err != nil {
		utils.RecordErrorInSpan(logicSpan, err, map[string]interface{}{"operation": "list_cadastros"})
		logicSpan.End()
		h.respondError(c, err, msgListFailed, 0)
		return
	}
	utils.AddSpanAttribute(logicSpan, "results_count", len(cadastros))
	logicSpan.End()

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusOK, models.SuccessData(cadastros))
	responseSpan.End()

	h.logger.Debug("ListCadastros completed",
		zap.Int("page", pagination.Page),
		zap.Int("page_size", pagination.PageSize),
		zap.Int("results", len(cadastros)),
		zap.Duration("duration", time.Since(startTime)))
}

// GetCadastro godoc
// @Summary Obter cadastro
// @Description Recupera um cadastro pelo id
// @Tags cadastro
// @Produce json
// @Param id path int true "ID do cadastro"
// @Success 200 {object} CadastroResponse "Cadastro encontrado"
// @Failure 400 {object} models.Envelope "ID inválido"
// @Failure 404 {object} models.Envelope "Cadastro não encontrado"
// @Failure 500 {object} models.Envelope "Erro interno do servidor"
// @Router /api/cadastro/{id} [get]
func (h *CadastroHandlers) GetCadastro(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	cadastro, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, msgGetFailed, id)
		return
	}

	c.JSON(http.StatusOK, models.SuccessData(cadastro))
}

// CreateCadastro godoc
// @Summary Criar cadastro
// @Description Cria um cadastro. dataAbertura recebe a data atual e saldoInicial negativo é gravado como zero.
// @Tags cadastro
// @Accept json
// @Produce json
// @Param data body models.CadastroInput true "Dados do cadastro"
// @Success 201 {object} CadastroResponse "Cadastro criado"
// @Header 201 {string} Location "/api/cadastro/{id}"
// @Failure 400 {object} models.Envelope "Dados inválidos"
// @Failure 500 {object} models.Envelope "Erro interno do servidor"
// @Router /api/cadastro [post]
func (h *CadastroHandlers) CreateCadastro(c *gin.Context) {
	ctx := c.Request.Context()
	span := trace.SpanFromContext(ctx)
	defer utils.AddTimingToSpan(span, requestStart(c))

	_, parseSpan := utils.TraceInputParsing(ctx, "cadastro_body")
	var input models.CadastroInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, map[string]interface{}{"operation": "create_cadastro"})
		parseSpan.End()
		h.respondBindError(c, err)
		return
	}
	parseSpan.End()

	logicCtx, logicSpan := utils.TraceBusinessLogic(ctx, "create_cadastro")
	created, err := h.service.Create(logicCtx, input)
	if err != nil {
		utils.RecordErrorInSpan(logicSpan, err, map[string]interface{}{"operation": "create_cadastro"})
		logicSpan.End()
		h.respondError(c, err, msgCreateFailed, 0)
		return
	}
	utils.AddSpanAttribute(logicSpan, "cadastro_id", created.ID)
	logicSpan.End()

	_, responseSpan := utils.TraceResponseSerialization(ctx, "created")
	c.Header("Location", "/api/cadastro/"+strconv.Itoa(created.ID))
	c.JSON(http.StatusCreated, models.SuccessData(created))
	responseSpan.End()
}

// UpdateCadastro godoc
// @Summary Atualizar cadastro
// @Description Substitui nome, descricao, endereco, telefone, email e tipoConta de um cadastro existente
// @Tags cadastro
// @Accept json
// @Produce json
// @Param id path int true "ID do cadastro"
// @Param data body models.CadastroInput true "Dados do cadastro"
// @Success 200 {object} models.Envelope "Cadastro atualizado"
// @Failure 400 {object} models.Envelope "Dados inválidos"
// @Failure 404 {object} models.Envelope "Cadastro não encontrado"
// @Failure 409 {object} models.Envelope "Conflito de concorrência"
// @Failure 500 {object} models.Envelope "Erro interno do servidor"
// @Router /api/cadastro/{id} [put]
func (h *CadastroHandlers) UpdateCadastro(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var input models.CadastroInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondBindError(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, input); err != nil {
		h.respondError(c, err, msgUpdateFailed, id)
		return
	}

	c.JSON(http.StatusOK, models.SuccessMessage(msgUpdated))
}

// DeleteCadastro godoc
// @Summary Remover cadastro
// @Description Remove um cadastro existente
// @Tags cadastro
// @Produce json
// @Param id path int true "ID do cadastro"
// @Success 200 {object} models.Envelope "Cadastro removido"
// @Failure 400 {object} models.Envelope "ID inválido"
// @Failure 404 {object} models.Envelope "Cadastro não encontrado"
// @Failure 500 {object} models.Envelope "Erro interno do servidor"
// @Router /api/cadastro/{id} [delete]
func (h *CadastroHandlers) DeleteCadastro(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, msgDeleteFailed, id)
		return
	}

	c.JSON(http.StatusOK, models.SuccessMessage(msgDeleted))
}

// requestStart returns the time ActionTiming saw the request, or now when
// the handler runs without it
func requestStart(c *gin.Context) time.Time {
	if v, ok := c.Get(middleware.RequestStartKey); ok {
		if start, ok := v.(time.Time); ok {
			return start
		}
	}
	return time.Now()
}

// parseID reads the :id path parameter and answers 400 when it is not a
// 32-bit integer, the range of the id column
func (h *CadastroHandlers) parseID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	parsed, err := strconv.ParseInt(raw, 10, 32)
	id := int(parsed)
	if err != nil {
		verr := models.NewValidationError()
		verr.Add("id", "The value '"+raw+"' is not valid.")
		h.respondError(c, verr, "", 0)
		return 0, false
	}
	trace.SpanFromContext(c.Request.Context()).SetAttributes(attribute.Int("cadastro_id", id))
	return id, true
}

// CadastroResponse documents the envelope carrying a single cadastro
type CadastroResponse struct {
	Success bool            `json:"success"`
	Data    models.Cadastro `json:"data"`
}

// CadastroListResponse documents the envelope carrying a page of cadastros
type CadastroListResponse struct {
	Success bool                 `json:"success"`
	Data    []models.CadastroDTO `json:"data"`
}
