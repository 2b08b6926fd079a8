package locale

import "context"

var messages = map[string]map[string]string{
	PT: {
		"common.success":                    "Sucesso",
		"common.unauthorized":               "Não autorizado",
		"common.bad_request":                "Requisição inválida",
		"common.internal_error":             "Ocorreu um erro inesperado. Tente novamente.",
		"analysis.no_competitors":           "Por favor, insira pelo menos um concorrente.",
		"analysis.too_many_competitors":     "Informe no máximo 3 concorrentes.",
		"analysis.competitor_too_short":     "Deve ter pelo menos 3 caracteres.",
		"analysis.competitor_invalid_chars": "Nome contém caracteres inválidos.",
		"analysis.invalid_mode":             "Modo de análise inválido.",
		"analysis.in_progress":              "Uma análise já está em andamento.",
		"analysis.generation_failed":        "Ocorreu um erro ao gerar o relatório. Por favor, verifique sua chave de API e tente novamente.",
		"analysis.mute_not_confirmed":       "Confirme para silenciar a narração.",
		"history.not_found":                 "Análise não encontrada no histórico.",
		"history.clear_not_confirmed":       "Confirme para limpar todo o histórico de análises. Esta ação não pode ser desfeita.",
		"media.image_required":              "Imagem, tipo e instrução são obrigatórios.",
		"media.audio_required":              "Áudio e tipo são obrigatórios.",
		"media.text_required":               "Por favor, insira algum texto para gerar o áudio.",
		"media.invalid_voice":               "Voz inválida.",
		"media.report_required":             "O conteúdo do relatório é obrigatório.",
		"media.invalid_aspect_ratio":        "Proporção de vídeo inválida.",
		"media.generation_failed":           "Falha ao gerar a mídia. Tente novamente.",
		"media.video_job_not_found":         "Geração de vídeo não encontrada.",
		"media.storage_failed":              "Falha ao armazenar o arquivo gerado.",
		"session.issue_failed":              "Falha ao iniciar a sessão.",
		"session.username_too_long":         "Nome de usuário muito longo.",
	},
	EN: {
		"common.success":                    "Success",
		"common.unauthorized":               "Unauthorized",
		"common.bad_request":                "Bad request",
		"common.internal_error":             "Something went wrong. Please try again.",
		"analysis.no_competitors":           "Please enter at least one competitor.",
		"analysis.too_many_competitors":     "Enter at most 3 competitors.",
		"analysis.competitor_too_short":     "Must be at least 3 characters long.",
		"analysis.competitor_invalid_chars": "Name contains invalid characters.",
		"analysis.invalid_mode":             "Invalid analysis mode.",
		"analysis.in_progress":              "An analysis is already running.",
		"analysis.generation_failed":        "An error occurred while generating the report. Please check your API key and try again.",
		"analysis.mute_not_confirmed":       "Confirm to mute the narration.",
		"history.not_found":                 "Analysis not found in history.",
		"history.clear_not_confirmed":       "Confirm to clear the whole analysis history. This cannot be undone.",
		"media.image_required":              "Image data, mime type and prompt are required.",
		"media.audio_required":              "Audio data and mime type are required.",
		"media.text_required":               "Please enter some text to generate audio.",
		"media.invalid_voice":               "Invalid voice.",
		"media.report_required":             "Report content is required.",
		"media.invalid_aspect_ratio":        "Invalid video aspect ratio.",
		"media.generation_failed":           "Failed to generate media. Please try again.",
		"media.video_job_not_found":         "Video generation not found.",
		"media.storage_failed":              "Failed to store the generated file.",
		"session.issue_failed":              "Failed to start the session.",
		"session.username_too_long":         "Username is too long.",
	},
}

// Translate returns the message for key in lang. Unknown keys are returned as-is.
func Translate(lang, key string) string {
	if table, ok := messages[ParseLang(lang)]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	return key
}

// T translates key using the language stored in ctx.
func T(ctx context.Context, key string) string {
	return Translate(GetLang(ctx), key)
}
