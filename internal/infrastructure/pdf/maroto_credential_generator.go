// Package pdf implementa la generación de la credencial imprimible del
// estudiante: una hoja con sus datos, grupo/carrera y el código QR que se
// escanea en el check-in de asistencia.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Sistema de Asistencia                │
//	│  ───────────────────────────────────────────  │
//	│  Nombre completo + matrícula                  │
//	│  Carrera / Grupo / Curso                      │
//	│  ───────────────────────────────────────────  │
//	│                 [ QR CODE ]                   │
//	│  Leyenda: presentar al escanear asistencia    │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/invorya/asistencia-api/internal/application/usecase"
	"github.com/invorya/asistencia-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.CredentialPDFGenerator = (*MarotoCredentialGenerator)(nil)

// MarotoCredentialGenerator implementa usecase.CredentialPDFGenerator usando Maroto v2.
type MarotoCredentialGenerator struct{}

// NewMarotoCredentialGenerator construye el generador.
func NewMarotoCredentialGenerator() *MarotoCredentialGenerator {
	return &MarotoCredentialGenerator{}
}

// GenerateCredentialPDF genera la credencial y devuelve sus bytes.
// group y profession pueden ser nil si el estudiante no los tiene asignados.
func (g *MarotoCredentialGenerator) GenerateCredentialPDF(
	_ context.Context,
	student *entity.Student,
	group *entity.Group,
	profession *entity.Profession,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Credencial de estudiante", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(studentRow(student))
	m.AddRows(academicRow(student, group, profession))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(qrRow(student))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar credencial: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SISTEMA DE ASISTENCIA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Credencial de estudiante", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
	)
}

func studentRow(student *entity.Student) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(student.Fullname, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 2,
			}),
			text.New("Matrícula: "+student.StudentID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
	)
}

func academicRow(student *entity.Student, group *entity.Group, profession *entity.Profession) core.Row {
	groupName := "—"
	if group != nil {
		groupName = group.Name
	}
	professionName := "—"
	if profession != nil {
		professionName = profession.Name
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Carrera: %s   |   Grupo: %s   |   Curso: %d",
				professionName, groupName, student.Course,
			), props.Text{Size: 9, Top: 2, Color: colorGray}),
		),
	)
}

func qrRow(student *entity.Student) core.Row {
	return row.New(60).Add(
		col.New(12).Add(
			code.NewQr(student.QRCode, props.Rect{
				Center:  true,
				Percent: 90,
			}),
		),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Presente este código al escanear su asistencia.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		),
	)
}
