package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ogurasousui/employee-record/internal/core/employee"
)

// RenderSummary は社員レコードと派生値を 2 列の表として出力します。
func RenderSummary(w io.Writer, s *employee.Summary) error {
	if s == nil {
		return fmt.Errorf("console: nil summary")
	}

	table := newTable(w)
	table.SetHeader([]string{"Field", "Value"})
	table.AppendBulk([][]string{
		{"CPR", s.CPR},
		{"First name", s.FirstName},
		{"Last name", s.LastName},
		{"Department", s.Department},
		{"Base salary", money(s.BaseSalary)},
		{"Education", s.EducationalLevel},
		{"Date of birth", s.DateOfBirth},
		{"Date of employment", s.DateOfEmployment},
		{"Country", s.Country},
		{"Salary", money(s.Salary)},
		{"Discount", strconv.FormatFloat(s.Discount, 'f', 1, 64)},
		{"Shipping costs", money(s.ShippingCosts)},
	})
	table.Render()
	return nil
}

// RenderRejections は受理されなかった入力を表として出力します。
func RenderRejections(w io.Writer, rejected []employee.Rejection) error {
	table := newTable(w)
	table.SetHeader([]string{"Field", "Input", "Reason"})
	for _, rej := range rejected {
		table.Append([]string{string(rej.Field), fmt.Sprint(rej.Value), describe(rej.Err)})
	}
	table.Render()
	return nil
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
