package format

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/fec-analyzer/cli/internal/models"
)

// TableFormatter handles table output formatting. It knows the domain
// models and renders them with accounting-friendly columns; anything else
// falls back to a reflective struct dump.
type TableFormatter struct {
	useColors bool
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(useColors bool) *TableFormatter {
	return &TableFormatter{useColors: useColors}
}

// Format formats data as a table
func (f *TableFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Println("No data to display")
		return nil
	}

	switch v := data.(type) {
	case []models.HistoryItem:
		return f.formatHistory(v)
	case []models.BalanceItem:
		return f.formatBalance(v)
	case *models.DetailResponse:
		return f.formatDetail(v)
	case *models.UploadResponse:
		return f.formatUpload(v)
	default:
		return f.formatReflection(data)
	}
}

func (f *TableFormatter) formatHistory(items []models.HistoryItem) error {
	if len(items) == 0 {
		fmt.Println("No data to display")
		return nil
	}

	table := f.newTable([]string{"Id", "Filename", "Processed At", "Lines", "Status"})
	for _, it := range items {
		table.Append([]string{it.ID, it.Filename, it.ProcessedAt,
			fmt.Sprintf("%d", it.NbLignes), f.formatStatus(it.Status)})
	}
	table.Render()
	return nil
}

func (f *TableFormatter) formatBalance(items []models.BalanceItem) error {
	if len(items) == 0 {
		fmt.Println("No data to display")
		return nil
	}

	table := f.newTable([]string{"Compte", "Libellé", "Débit", "Crédit", "Solde"})
	for _, it := range items {
		table.Append([]string{it.CompteNum, it.CompteLib,
			Amount(it.Debit), Amount(it.Credit), Amount(it.Solde)})
	}
	table.Render()
	return nil
}

func (f *TableFormatter) formatDetail(d *models.DetailResponse) error {
	fmt.Printf("Fichier: %s (%d lignes, %s)\n\n", d.Filename, d.NbLignes, f.formatStatus(d.Status))

	fmt.Println("Balance générale")
	if err := f.formatBalance(d.BalanceGenerale); err != nil {
		return err
	}

	fmt.Println("\nBilan")
	table := f.newTable([]string{"Poste", "Montant"})
	for _, p := range d.Bilan.Actif {
		table.Append([]string{p.Poste, Amount(p.Montant)})
	}
	table.Append([]string{"Total actif", Amount(d.Bilan.TotalActif)})
	for _, p := range d.Bilan.Passif {
		table.Append([]string{p.Poste, Amount(p.Montant)})
	}
	table.Append([]string{"Total passif", Amount(d.Bilan.TotalPassif)})
	table.Render()

	fmt.Println("\nCompte de résultat")
	table = f.newTable([]string{"Poste", "Montant"})
	for _, p := range d.CompteResultat.Charges {
		table.Append([]string{p.Poste, Amount(p.Montant)})
	}
	table.Append([]string{"Total charges", Amount(d.CompteResultat.TotalCharges)})
	for _, p := range d.CompteResultat.Produits {
		table.Append([]string{p.Poste, Amount(p.Montant)})
	}
	table.Append([]string{"Total produits", Amount(d.CompteResultat.TotalProduits)})
	table.Append([]string{"Résultat", Amount(d.CompteResultat.Resultat)})
	table.Render()
	return nil
}

func (f *TableFormatter) formatUpload(u *models.UploadResponse) error {
	table := f.newTable([]string{"Property", "Value"})
	table.Append([]string{"Id", u.ID})
	table.Append([]string{"Filename", u.Filename})
	table.Append([]string{"Status", f.formatStatus(u.Status)})
	table.Append([]string{"Lines", fmt.Sprintf("%d", u.NbLignes)})
	if u.Message != "" {
		table.Append([]string{"Message", u.Message})
	}
	table.Render()
	return nil
}

// formatReflection renders any struct (or pointer to one) as a vertical
// property table.
func (f *TableFormatter) formatReflection(data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			fmt.Println("No data to display")
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		fmt.Printf("%v\n", data)
		return nil
	}

	table := f.newTable([]string{"Property", "Value"})
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		table.Append([]string{formatHeader(t.Field(i).Name), fmt.Sprintf("%v", v.Field(i).Interface())})
	}
	table.Render()
	return nil
}

func (f *TableFormatter) newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	if f.useColors {
		table.SetHeaderColor(
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiBlueColor},
		)
	}
	return table
}

func (f *TableFormatter) formatStatus(status string) string {
	if !f.useColors {
		return status
	}
	switch strings.ToLower(status) {
	case "completed", "success", "ok":
		return color.GreenString(status)
	case "error", "failed":
		return color.RedString(status)
	default:
		return color.YellowString(status)
	}
}

// Amount renders a monetary value with two decimals and a euro sign.
func Amount(v float64) string {
	return fmt.Sprintf("%.2f €", v)
}

// formatHeader converts a Go field name to a spaced header, e.g.
// "NbLignes" -> "Nb Lignes".
func formatHeader(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
