package contact

import "strings"

// UTF8BOM byte-order mark prefixado na exportação para que planilhas
// renderizem caracteres acentuados corretamente.
const UTF8BOM = "\uFEFF"

// csvColumns ordem fixa das colunas da exportação
var csvColumns = []string{
	"Empresa",
	"Nome Fantasia",
	"Categoria",
	"CEP",
	"Cidade",
	"Estado",
	"Telefone",
	"Email",
	"Website",
	"Status",
}

// ToCSV converte contatos em CSV com cabeçalho fixo e todos os valores entre
// aspas duplas. Entrada vazia produz apenas a linha de cabeçalho.
func ToCSV(contacts []*Contact) string {
	lines := make([]string, 0, len(contacts)+1)
	lines = append(lines, strings.Join(csvColumns, ","))

	for _, c := range contacts {
		fields := []string{
			c.CompanyName,
			c.FantasyName,
			c.Category,
			c.Address.ZipCode,
			c.Address.City,
			c.Address.State,
			c.Phone,
			c.Email,
			c.Website,
			c.Status,
		}

		quoted := make([]string, len(fields))
		for i, field := range fields {
			quoted[i] = quoteCSVField(field)
		}
		lines = append(lines, strings.Join(quoted, ","))
	}

	return strings.Join(lines, "\n")
}

// quoteCSVField envolve o valor em aspas duplas, escapando aspas internas
func quoteCSVField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
