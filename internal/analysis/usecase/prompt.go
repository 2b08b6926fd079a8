package usecase

import (
	"fmt"
	"strings"

	"spyglass-srv/internal/model"
)

const trafficTableHeader = `| Concorrente | Busca Orgânica (%) | Busca Paga (%) | Social (%) | Direto (%) | Referência (%) |
|---|---|---|---|---|---|`

const standardPrompt = `Você é SPYGLASS, uma IA especialista em inteligência competitiva de marketing. Sua missão é gerar um plano de análise detalhado e acionável.

**Alvos:** %s

**Formato do Relatório (Obrigatório, use Markdown):**

Comece com um título geral usando "#". Cada seção abaixo DEVE começar com um título de nível 2 ("## ").

## Resumo Executivo
Uma visão geral concisa dos concorrentes e as principais descobertas.

## Resumo Comparativo das Fontes de Tráfego
Inclua uma tabela markdown comparando as fontes de tráfego estimadas (em %%). Use dados realistas e plausíveis. A tabela DEVE ter a seguinte estrutura exata:
%s
%s
(Substitua os [valor] pelos percentuais estimados para cada concorrente.)

## Análise de Palavras-chave e SEO
Identifique as principais palavras-chave de cada concorrente. Avalie a autoridade de domínio e a estratégia de backlinks.

## Estratégia de Conteúdo e Marketing
Que tipo de conteúdo eles produzem (blogs, vídeos, etc.)? Quais são suas campanhas recentes?

## Presença nas Redes Sociais
Quais plataformas eles dominam? Analise o engajamento e a estratégia de postagem.

## Ameaças e Oportunidades (Análise SWOT)
Forças, fraquezas, oportunidades e ameaças de cada concorrente.

## Plano de Ação Recomendado
Liste de 3 a 5 ações concretas e de alto impacto.

Para cada concorrente, insira logo após a primeira menção um placeholder no formato exato [SCREENSHOT_PLACEHOLDER_FOR_Nome], substituindo Nome pelo nome real do concorrente.

**Instrução:** Seja direto, analítico e use uma linguagem que um estrategista de marketing entenderia.`

const deepPrompt = `Como SPYGLASS, uma IA de inteligência de marketing, realize uma **investigação profunda e atualizada** sobre os seguintes concorrentes: %s. Utilize a pesquisa na web para obter os dados mais recentes.

**Siga estritamente o formato de relatório Markdown abaixo.** Comece com um título geral usando "#". Cada seção DEVE começar com um título de nível 2 ("## ").

## Resumo Executivo Estratégico
Análise concisa baseada nos dados mais recentes, destacando movimentos estratégicos e mudanças de mercado.

## Comparativo de Fontes de Tráfego
Crie uma tabela Markdown comparando as fontes de tráfego estimadas (em %%), com a estrutura exata:
%s
%s

## Análise de SEO e Táticas de Conteúdo Recentes
Palavras-chave em ascensão e estratégias de conteúdo lançadas nos últimos 6 meses. Destaque campanhas virais ou de alto impacto.

## Desempenho e Estratégia em Mídias Sociais
Sentimento do público com base em menções recentes. Parcerias com influenciadores e campanhas pagas.

## Análise SWOT Tática
Forças, fraquezas, oportunidades e ameaças baseadas em eventos recentes.

## Recomendações de Ação Imediata
Liste de 3 a 5 ações urgentes para contra-atacar ou explorar uma fraqueza descoberta.`

func buildPrompt(mode string, competitors []string) string {
	rows := make([]string, len(competitors))
	for i, c := range competitors {
		rows[i] = fmt.Sprintf("| %s | [valor] | [valor] | [valor] | [valor] | [valor] |", c)
	}
	targets := strings.Join(competitors, ", ")
	table := strings.Join(rows, "\n")

	if mode == model.ModeDeep {
		return fmt.Sprintf(deepPrompt, targets, trafficTableHeader, table)
	}
	return fmt.Sprintf(standardPrompt, targets, trafficTableHeader, table)
}
