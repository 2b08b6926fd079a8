package usecase

import "fmt"

const summaryPrompt = `Você é um diretor de cinema criando um trailer para um filme de espionagem. Transforme o seguinte relatório de inteligência em um roteiro de áudio curto, dramático e impactante (máximo de 3-4 frases curtas). Use uma linguagem de suspense e foque nas descobertas mais críticas.

Relatório:
"""
%s
"""

Exemplo de Saída: "Enquanto os alvos dormem, suas fraquezas foram expostas. Uma nova estratégia emerge das sombras. É hora de atacar."

Roteiro do Trailer:`

func buildSummaryPrompt(report string) string {
	return fmt.Sprintf(summaryPrompt, report)
}
