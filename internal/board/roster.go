package board

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

var rosterTemplate = template.Must(template.New("roster").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0 auto; padding: 20px; max-width: 900px; }
        h1 { text-align: center; }
        .podium { margin: 0 auto 24px; width: 40%; text-align: center; border: 2px solid #333; padding: 6px; }
        table { border-collapse: separate; border-spacing: 10px; margin: 0 auto; }
        td { width: 70px; height: 70px; text-align: center; vertical-align: middle; }
        td.seat { border: 2px solid #333; border-radius: 8px; font-size: 28px; font-weight: bold; }
        td.seat-placeholder { border: none; }
        @media print { body { padding: 0; } }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <div class="podium">Podium</div>
    <table>
{{- range .Rows}}
        <tr>
{{- range .}}
            {{if .Occupied}}<td class="seat">{{.Number}}</td>{{else}}<td class="seat-placeholder"></td>{{end}}
{{- end}}
        </tr>
{{- end}}
    </table>
</body>
</html>
`))

type rosterCell struct {
	Occupied bool
	Number   int
}

type rosterPage struct {
	Title string
	Rows  [][]rosterCell
}

// WriteRoster renders the printable roster of the board's current numbers.
func (b *Board) WriteRoster(w io.Writer, title string) error {
	page := rosterPage{Title: title, Rows: make([][]rosterCell, b.rows)}
	for row := 0; row < b.rows; row++ {
		page.Rows[row] = make([]rosterCell, b.columns)
		for col := 0; col < b.columns; col++ {
			c := b.At(row, col)
			page.Rows[row][col] = rosterCell{Occupied: c.Occupied, Number: c.number}
		}
	}
	if err := rosterTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render roster: %w", err)
	}
	return nil
}

// Format renders the board as plain text, podium on top.
func (b *Board) Format() string {
	var sb strings.Builder
	width := b.columns*5 - 1
	if width < 6 {
		width = 6
	}
	pad := (width - 6) / 2
	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteString("PODIUM\n")
	sb.WriteString(strings.Repeat("-", width))
	sb.WriteString("\n")
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.columns; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			c := b.At(row, col)
			if c.Occupied {
				sb.WriteString(fmt.Sprintf("%4d", c.number))
			} else {
				sb.WriteString("   .")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
