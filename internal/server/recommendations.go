package server

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/edulend/loanassist/gen/ent"
	loansv1 "github.com/edulend/loanassist/gen/proto/loans/v1"
	"github.com/edulend/loanassist/internal/common"
	"github.com/edulend/loanassist/internal/ranking"
	"github.com/edulend/loanassist/internal/repository"
)

type RecommendationsServer struct {
	loansv1.UnimplementedRecommendationsServiceServer
	banksRepo repository.BankRepository
	docsRepo  repository.DocumentRepository
	logger    *slog.Logger
}

func NewRecommendationsServer(banksRepo repository.BankRepository, docsRepo repository.DocumentRepository, logger *slog.Logger) *RecommendationsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecommendationsServer{banksRepo: banksRepo, docsRepo: docsRepo, logger: logger}
}

func (s *RecommendationsServer) RankLenders(ctx context.Context, req *loansv1.RankLendersRequest) (*loansv1.RankLendersResponse, error) {
	profile := ranking.Profile{
		GPA:    req.GetGpa(),
		Income: req.GetIncome(),
	}

	if req.DocId != nil {
		doc, err := s.docsRepo.GetByID(ctx, int(req.GetDocId()))
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, common.NotFoundError("document not found")
			}
			return nil, common.InternalError("document lookup failed")
		}
		profile = profileFromDocument(doc)
	}

	rules, err := s.banksRepo.List(ctx)
	if err != nil {
		return nil, common.InternalError("lender lookup failed")
	}
	if len(rules) == 0 {
		return nil, common.FailedPreconditionError("no lenders seeded")
	}

	ranked := ranking.Rank(profile, rules)
	out := make([]*loansv1.RankedLender, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, &loansv1.RankedLender{
			BankId:      int64(r.BankID),
			BankName:    r.BankName,
			Score:       int32(r.Score),
			Why:         r.Why,
			Interest:    r.Interest,
			MaxAmount:   float64(r.MaxAmount),
			Approval:    float64(r.Approval),
			Description: r.Description,
		})
	}
	s.logger.Debug("lenders ranked", "count", len(out), "gpa", profile.GPA, "income", profile.Income)
	return &loansv1.RankLendersResponse{Lenders: out}, nil
}

func profileFromDocument(doc *ent.Document) ranking.Profile {
	p := ranking.Profile{}
	if doc.ExtractedGpa != nil {
		p.GPA = strconv.FormatFloat(*doc.ExtractedGpa, 'f', -1, 64)
	}
	if doc.ExtractedIncome != nil {
		p.Income = strconv.FormatFloat(*doc.ExtractedIncome, 'f', -1, 64)
	}
	return p
}
