package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/edulend/loanassist/internal/repository"
)

// Service produces XLSX bytes for application exports.
type Service struct {
	appsRepo  repository.ApplicationRepository
	banksRepo repository.BankRepository
	logger    *slog.Logger
}

func NewService(appsRepo repository.ApplicationRepository, banksRepo repository.BankRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{appsRepo: appsRepo, banksRepo: banksRepo, logger: logger}
}

// ExportApplicationsXLSX returns an XLSX workbook (as bytes) listing the
// applications filed by one user, joined with the lender names.
func (s *Service) ExportApplicationsXLSX(ctx context.Context, userEmail string) ([]byte, error) {
	start := time.Now()

	apps, err := s.appsRepo.ListByEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}

	bankNames := map[int]string{}
	if rules, err := s.banksRepo.List(ctx); err == nil {
		for _, r := range rules {
			bankNames[r.BankID] = r.BankName
		}
	}

	f := excelize.NewFile()
	const sheet = "Applications"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Application ID",
		"Bank",
		"Status",
		"Submitted At",
		"Form Fields",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, a := range apps {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		bank := bankNames[a.BankID]
		if bank == "" {
			bank = fmt.Sprintf("bank %d", a.BankID)
		}

		write(1, a.ID)
		write(2, bank)
		write(3, a.Status)
		write(4, a.Timestamp.UTC().Format("2006-01-02 15:04:05"))
		write(5, flattenFormFields(a.FilledFormFields))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "D", 20)
	_ = f.SetColWidth(sheet, "E", "E", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_email", userEmail,
		"rows", len(apps),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// flattenFormFields renders the stored JSON object as "k=v; k=v" with
// keys in sorted order, so exports are stable across runs.
func flattenFormFields(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return string(raw)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s=%v", k, m[k])
	}
	return out
}
