// Package service contains the service layer for the Aethelgard Community API
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aethelgard/aethelgardapi/pkg/utils/zaplogger"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const llmTimeout = 30 * time.Second

const chatSystemInstruction = `Você é o assistente virtual do servidor Aethelgard de World of Warcraft.

Objetivo principal:
- Responder com precisão e clareza sobre: lore/história do WoW, mecânicas de jogo, classes e especializações, raças, raids e dungeons, profissões, comandos do jogo, atalhos e opções do cliente/servidor.
- Ajudar com dúvidas sobre o ranking e dados locais quando disponíveis.

Estilo de resposta:
- Português do Brasil, amigável e direto, com tom colaborativo. Use emojis com moderação.
- Estruture respostas em listas curtas quando fizer sentido. Inclua passos, exemplos e dicas práticas.

Regras de segurança e qualidade:
- Se não tiver certeza de um detalhe histórico ou técnico, diga que pode estar desatualizado.
- Não invente dados específicos do servidor que não estejam no contexto. Para ranking, use apenas os dados fornecidos no prompt.

Integração com dados locais:
- Caso o usuário fale sobre "ranking", "top" ou "melhores personagens", utilize os dados do ranking fornecidos no prompt para listar nomes, níveis e classes.`

const chatRetryMessage = "Opa! Parece que tive um pequeno curto-circuito. Tente perguntar novamente em um momento. 🤖💥"

// ChatService answers community questions through an LLM. Without an API key
// it degrades to deterministic offline responses instead of failing.
type ChatService struct {
	client  openai.Client
	model   string
	apiKey  string
	ranking *RankingService
}

// NewChatService creates a new chat service. ranking may be nil, in which
// case no ranking context is injected into prompts.
func NewChatService(apiKey, model string, ranking *RankingService) *ChatService {
	s := &ChatService{
		model:   model,
		apiKey:  apiKey,
		ranking: ranking,
	}
	if apiKey != "" {
		s.client = openai.NewClient(option.WithAPIKey(apiKey))
	} else {
		zaplogger.Warn("No LLM API key configured, chatbot runs in offline mode")
	}
	return s
}

// Send answers a single chat message. LLM failures return a friendly retry
// message rather than an error so the chat widget never breaks.
func (s *ChatService) Send(ctx context.Context, message string) (string, error) {
	if s.apiKey == "" {
		return offlineResponse(message), nil
	}

	prompt := message
	if s.ranking != nil && mentionsRanking(message) {
		if rankingInfo := s.rankingContext(ctx); rankingInfo != "" {
			prompt = rankingInfo + "\n\nMinha pergunta é: " + message
		}
	}

	llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	completion, err := s.client.Chat.Completions.New(llmCtx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(chatSystemInstruction),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		zaplogger.Error("LLM chat request failed", zaplogger.Fields{"error": err.Error()})
		return chatRetryMessage, nil
	}
	if len(completion.Choices) == 0 {
		return chatRetryMessage, nil
	}

	return completion.Choices[0].Message.Content, nil
}

func mentionsRanking(message string) bool {
	msg := strings.ToLower(message)
	return strings.Contains(msg, "ranking") || strings.Contains(msg, "top")
}

// rankingContext renders the current top characters as prompt context
func (s *ChatService) rankingContext(ctx context.Context) string {
	rows, err := s.ranking.TopCharacters(ctx, DefaultRankingLimit)
	if err != nil {
		zaplogger.Warn("Failed to fetch ranking for chat context", zaplogger.Fields{"error": err.Error()})
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Aqui estão os dados atuais do ranking para meu contexto:\n")
	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("%d. %s (Lvl %d, classe %d)\n", i+1, row.Name, row.Level, row.Class))
	}
	return sb.String()
}

// offlineResponse answers a handful of common questions without an LLM
func offlineResponse(message string) string {
	msg := strings.ToLower(message)

	switch {
	case strings.Contains(msg, "shadow") && (strings.Contains(msg, "build") || strings.Contains(msg, "talento")):
		return "Para **Shadow Priest** no WoW 3.3.5a (WotLK), a build padrão mais eficiente para PvE é a **14/0/57**, focando em *Vampiric Touch*, *Devouring Plague*, *Mind Flay* e *Dispersion*. 🔮✨ *(Modo Offline)*"
	case strings.Contains(msg, "ola") || strings.Contains(msg, "olá") || strings.Contains(msg, "oi"):
		return "Olá! 👋 Como posso ajudar você hoje em Azeroth? *(Modo Offline)*"
	case strings.Contains(msg, "rate") || strings.Contains(msg, "xp"):
		return "As rates do servidor são configuradas para proporcionar uma experiência equilibrada. Digite `.server info` no jogo para ver os detalhes exatos! *(Modo Offline)*"
	case strings.Contains(msg, "realmlist"):
		return "O realmlist do servidor é: `set realmlist game.aethelgard-wow.com` *(Modo Offline)*"
	default:
		return "Estou operando em **Modo Offline** no momento (sem chave de API configurada). Posso responder coisas básicas, mas para ativar minha inteligência total, configure a variável `AG_API_OPENAI_API_KEY`. 🧠🔧"
	}
}
