package services

import "github.com/mehuljariwala/admin-dashboard/internal/repos"

type ReportService struct {
	Reports *repos.ReportRepo
}

func NewReportService(reports *repos.ReportRepo) *ReportService {
	return &ReportService{Reports: reports}
}

// SalesReport is the aggregate payload behind the dashboard/report charts.
type SalesReport struct {
	From        string              `json:"from,omitempty"`
	To          string              `json:"to,omitempty"`
	ByStatus    []repos.StatusCount `json:"by_status"`
	TopParties  []repos.PartyTotal  `json:"top_parties"`
	TopColors   []repos.ColorTotal  `json:"top_colors"`
	TotalOrders int                 `json:"total_orders"`
}

func (s *ReportService) Sales(from, to string) (SalesReport, error) {
	byStatus, err := s.Reports.CountByStatus(from, to)
	if err != nil {
		return SalesReport{}, err
	}
	parties, err := s.Reports.TotalsByParty(from, to, 10)
	if err != nil {
		return SalesReport{}, err
	}
	colors, err := s.Reports.TotalsByColor(from, to, 10)
	if err != nil {
		return SalesReport{}, err
	}
	total := 0
	for _, sc := range byStatus {
		total += sc.Count
	}
	return SalesReport{
		From: from, To: to,
		ByStatus: byStatus, TopParties: parties, TopColors: colors,
		TotalOrders: total,
	}, nil
}
