// Package revenue contém o motor de projeção de receita das marcas.
//
// Todas as funções são puras: recebem um snapshot imutável da lista de marcas
// e devolvem estruturas novas a cada chamada. Nada aqui faz I/O, guarda estado
// ou precisa de lock, então chamadas concorrentes são seguras.
package revenue

// ProjectionMonths é o tamanho fixo do horizonte de projeção.
const ProjectionMonths = 12

// Months é a linha do tempo global compartilhada por todas as marcas.
// StartingMonth e MonthIndex são índices nesta lista.
var Months = [ProjectionMonths]string{
	"Oct 2025", "Nov 2025", "Dec 2025", "Jan 2026", "Feb 2026", "Mar 2026",
	"Apr 2026", "May 2026", "Jun 2026", "Jul 2026", "Aug 2026", "Sep 2026",
}

// QuarterLabels são os quatro trimestres fixos da projeção, em ordem.
var QuarterLabels = [4]string{"Q4 2025", "Q1 2026", "Q2 2026", "Q3 2026"}

const unknownMonth = "Unknown"

// MonthLabel retorna o rótulo do mês ou "Unknown" fora de 0..11.
func MonthLabel(monthIndex int) string {
	if monthIndex < 0 || monthIndex >= ProjectionMonths {
		return unknownMonth
	}
	return Months[monthIndex]
}

// QuarterOf retorna o índice do trimestre (0..3) de um slot mensal.
func QuarterOf(monthIndex int) int {
	switch {
	case monthIndex < 3:
		return 0
	case monthIndex < 6:
		return 1
	case monthIndex < 9:
		return 2
	default:
		return 3
	}
}
