package http

import (
	"spyglass-srv/internal/media"
	"spyglass-srv/pkg/response"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Edit image
// @Description Apply a text instruction to an image
// @Tags Media
// @Accept json
// @Produce json
// @Param body body editImageReq true "Base64 image, mime type and instruction"
// @Success 200 {object} editImageResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/media/images/edit [post]
func (h *handler) EditImage(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processEditImageRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "media.delivery.http.EditImage: processEditImageRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.EditImage(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "media.delivery.http.EditImage: usecase EditImage failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newEditImageResp(o))
}

// @Summary Transcribe audio
// @Tags Media
// @Accept json
// @Produce json
// @Param body body transcribeReq true "Base64 audio and mime type"
// @Success 200 {object} transcribeResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/media/transcriptions [post]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processTranscribeRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "media.delivery.http.Transcribe: processTranscribeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Transcribe(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "media.delivery.http.Transcribe: usecase Transcribe failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, transcribeResp{Text: o.Text})
}

// @Summary Generate speech
// @Description Synthesize text with a prebuilt voice, store the WAV file and return a presigned URL
// @Tags Media
// @Accept json
// @Produce json
// @Param body body speechReq true "Text and optional voice name"
// @Success 200 {object} speechResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/media/speech [post]
func (h *handler) GenerateSpeech(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSpeechRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "media.delivery.http.GenerateSpeech: processSpeechRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GenerateSpeech(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "media.delivery.http.GenerateSpeech: usecase GenerateSpeech failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSpeechResp(o))
}

// @Summary Summarize report
// @Description Turn a report into a short dramatic script
// @Tags Media
// @Accept json
// @Produce json
// @Param body body summaryReq true "Report content"
// @Success 200 {object} summaryResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/media/summaries [post]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSummaryRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "media.delivery.http.Summarize: processSummaryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Summarize(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "media.delivery.http.Summarize: usecase Summarize failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, summaryResp{Summary: o.Summary})
}

// @Summary Create video job
// @Description Queue an image-to-video generation. Poll the job until it is DONE or FAILED.
// @Tags Media
// @Accept json
// @Produce json
// @Param body body createVideoReq true "Base64 image, mime type, prompt and aspect ratio (16:9 or 9:16)"
// @Success 200 {object} videoJobResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/media/videos [post]
func (h *handler) CreateVideoJob(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processCreateVideoRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "media.delivery.http.CreateVideoJob: processCreateVideoRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.CreateVideoJob(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "media.delivery.http.CreateVideoJob: usecase CreateVideoJob failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newVideoJobResp(o))
}

// @Summary Get video job
// @Tags Media
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} videoJobResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/media/videos/{job_id} [get]
func (h *handler) GetVideoJob(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.GetVideoJob(ctx, sc, media.GetVideoJobInput{JobID: c.Param("job_id")})
	if err != nil {
		h.l.Warnf(ctx, "media.delivery.http.GetVideoJob: usecase GetVideoJob failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newVideoJobResp(o))
}
