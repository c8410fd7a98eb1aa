package httperr

var messages = map[string]string{
	"invalid_request":        "Dados inválidos.",
	"invalid_credentials":    "Credenciais inválidas.",
	"invalid_token":          "Token inválido.",
	"missing_token":          "Token ausente.",
	"forbidden":              "Acesso negado.",
	"lead_not_found":         "Lead não encontrado.",
	"stage_not_found":        "Etapa não encontrada.",
	"owner_not_found":        "Responsável não encontrado.",
	"user_not_found":         "Usuário não encontrado.",
	"sale_not_found":         "Venda não encontrada.",
	"sale_already_exists":    "Este lead já possui uma venda.",
	"lead_not_closed":        "O lead precisa estar em uma etapa de fechamento para dar baixa.",
	"reorder_unknown_stage":  "A reordenação referencia uma etapa inexistente.",
	"email_already_exists":   "E-mail já cadastrado.",
	"invalid_email_domain":   "O domínio do e-mail informado não parece ser válido.",
	"cannot_deactivate_self": "Você não pode desativar a própria conta.",
	"internal_error":         "Erro interno.",
	"not_found":              "Rota não encontrada.",
	"too_many_requests":      "Muitas tentativas. Tente novamente mais tarde.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
