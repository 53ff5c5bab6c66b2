package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/edulend/loanassist/constants"
	"github.com/edulend/loanassist/gen/ent"
	loansv1 "github.com/edulend/loanassist/gen/proto/loans/v1"
	"github.com/edulend/loanassist/internal/common"
	"github.com/edulend/loanassist/internal/export"
	"github.com/edulend/loanassist/internal/noc"
	"github.com/edulend/loanassist/internal/ranking"
	"github.com/edulend/loanassist/internal/repay"
	"github.com/edulend/loanassist/internal/repository"
)

type LoansServer struct {
	loansv1.UnimplementedLoansServiceServer
	appsRepo  repository.ApplicationRepository
	apptsRepo repository.AppointmentRepository
	banksRepo repository.BankRepository
	docsRepo  repository.DocumentRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewLoansServer(
	appsRepo repository.ApplicationRepository,
	apptsRepo repository.AppointmentRepository,
	banksRepo repository.BankRepository,
	docsRepo repository.DocumentRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *LoansServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoansServer{
		appsRepo:  appsRepo,
		apptsRepo: apptsRepo,
		banksRepo: banksRepo,
		docsRepo:  docsRepo,
		exporter:  exporter,
		logger:    logger,
	}
}

func (s *LoansServer) CalculateEMI(_ context.Context, req *loansv1.CalculateEMIRequest) (*loansv1.CalculateEMIResponse, error) {
	plan := repay.NewPlan(req.GetPrincipal(), req.GetAnnualRate(), int(req.GetTenureYears()))
	return &loansv1.CalculateEMIResponse{
		Emi:           plan.EMI,
		Months:        int32(plan.Months),
		TotalPayment:  plan.TotalPayment,
		TotalInterest: plan.TotalInterest,
	}, nil
}

func (s *LoansServer) SubmitApplication(ctx context.Context, req *loansv1.SubmitApplicationRequest) (*loansv1.SubmitApplicationResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}
	if req.GetBankId() <= 0 {
		return nil, common.InvalidArgumentError("bank_id is required")
	}

	fields := make(map[string]any, len(req.GetFilledFormFields()))
	for k, v := range req.GetFilledFormFields() {
		fields[k] = v
	}

	appID, err := s.appsRepo.Append(ctx, email, int(req.GetBankId()), fields)
	if err != nil {
		s.logger.Error("submit application failed", "email", email, "error", err)
		return nil, common.InternalError("submit application failed")
	}

	resp := &loansv1.SubmitApplicationResponse{
		AppId:  int64(appID),
		Status: string(constants.AppStatusPending),
	}
	if req.GetScheduleAppointment() {
		apptID, when, err := s.apptsRepo.ScheduleDefault(ctx, email, appID, int(req.GetBankId()))
		if err != nil {
			s.logger.Error("default appointment failed", "app_id", appID, "error", err)
			return nil, common.InternalError("appointment scheduling failed")
		}
		id64 := int64(apptID)
		resp.AppointmentId = &id64
		resp.ScheduledTime = &when
	}
	return resp, nil
}

func (s *LoansServer) ListApplications(ctx context.Context, req *loansv1.ListApplicationsRequest) (*loansv1.ListApplicationsResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}
	apps, err := s.appsRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, common.InternalError("list applications failed")
	}
	out := make([]*loansv1.Application, 0, len(apps))
	for _, a := range apps {
		out = append(out, &loansv1.Application{
			Id:               int64(a.ID),
			UserEmail:        a.UserEmail,
			BankId:           int64(a.BankID),
			Status:           a.Status,
			FilledFormFields: string(a.FilledFormFields),
			Timestamp:        a.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return &loansv1.ListApplicationsResponse{Applications: out}, nil
}

func (s *LoansServer) ScheduleAppointment(ctx context.Context, req *loansv1.ScheduleAppointmentRequest) (*loansv1.ScheduleAppointmentResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}
	if req.GetAppId() <= 0 {
		return nil, common.InvalidArgumentError("app_id is required")
	}
	if req.GetScheduledTime() == "" {
		return nil, common.InvalidArgumentError("scheduled_time is required")
	}

	if _, err := s.appsRepo.GetByID(ctx, int(req.GetAppId())); err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("application not found")
		}
		return nil, common.InternalError("application lookup failed")
	}

	id, when, err := s.apptsRepo.Schedule(ctx, email, int(req.GetAppId()), int(req.GetBankId()), req.GetScheduledTime())
	if err != nil {
		s.logger.Error("schedule appointment failed", "app_id", req.GetAppId(), "error", err)
		return nil, common.InternalError("schedule appointment failed")
	}
	return &loansv1.ScheduleAppointmentResponse{
		AppointmentId: int64(id),
		ScheduledTime: when,
		Status:        string(constants.AppointmentScheduled),
	}, nil
}

func (s *LoansServer) ListAppointments(ctx context.Context, req *loansv1.ListAppointmentsRequest) (*loansv1.ListAppointmentsResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}
	appts, err := s.apptsRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, common.InternalError("list appointments failed")
	}
	out := make([]*loansv1.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, &loansv1.Appointment{
			Id:            int64(a.ID),
			AppId:         int64(a.AppID),
			UserEmail:     a.UserEmail,
			BankId:        int64(a.BankID),
			ScheduledTime: a.ScheduledTime,
			CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339),
			Status:        a.Status,
		})
	}
	return &loansv1.ListAppointmentsResponse{Appointments: out}, nil
}

func (s *LoansServer) ExportApplications(ctx context.Context, req *loansv1.ExportApplicationsRequest) (*loansv1.ExportApplicationsResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}
	xlsx, err := s.exporter.ExportApplicationsXLSX(ctx, email)
	if err != nil {
		s.logger.Error("export failed", "email", email, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &loansv1.ExportApplicationsResponse{Xlsx: xlsx}, nil
}

func (s *LoansServer) GenerateNOC(ctx context.Context, req *loansv1.GenerateNOCRequest) (*loansv1.GenerateNOCResponse, error) {
	if req.GetDocId() <= 0 {
		return nil, common.InvalidArgumentError("doc_id is required")
	}
	doc, err := s.docsRepo.GetByID(ctx, int(req.GetDocId()))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("document not found")
		}
		return nil, common.InternalError("document lookup failed")
	}

	bankName := ""
	if req.GetBankId() > 0 {
		if rules, err := s.banksRepo.List(ctx); err == nil {
			bankName = lookupBankName(rules, int(req.GetBankId()))
		}
	}

	cert := noc.Generate(noc.Details{
		StudentName: deref(doc.ExtractedName),
		USN:         deref(doc.ExtractedUsn),
		College:     deref(doc.ExtractedCollege),
		Course:      deref(doc.ExtractedCourse),
		BankName:    bankName,
		LoanAmount:  req.GetLoanAmount(),
	})
	return &loansv1.GenerateNOCResponse{Certificate: cert}, nil
}

func lookupBankName(rules []ranking.LenderRule, id int) string {
	for _, r := range rules {
		if r.BankID == id {
			return r.BankName
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
