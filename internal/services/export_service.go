package services

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"optiqa/internal/catalog"
	"optiqa/internal/models/db_models"
	"optiqa/internal/models/response_models"
	"optiqa/internal/repositories"
	"optiqa/pkg/utils"
)

const reportTitle = "Your Personalized Vision Plan"

type ExportServiceInterface interface {
	BuildReport(ctx context.Context, sessionID string) (*response_models.ReportDocument, error)
}

type ExportService struct {
	repo repositories.SessionRepositoryInterface
	now  func() time.Time
}

func NewExportService(repo repositories.SessionRepositoryInterface) ExportServiceInterface {
	return &ExportService{repo: repo, now: time.Now}
}

// BuildReport assembles the printable summary: title, answered Q&A pairs,
// insight text and a generation timestamp. The caller hands it to the
// print/save facility; a failure here never touches wizard state.
func (s *ExportService) BuildReport(ctx context.Context, sessionID string) (*response_models.ReportDocument, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, utils.ErrSessionNotFound
	}
	session, err := s.repo.GetSessionByID(ctx, id)
	if err != nil {
		log.Printf("Error loading session %s for export: %v", sessionID, err)
		return nil, utils.ErrExportFailed
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	if session.InsightStatus != db_models.InsightStatusReady {
		return nil, utils.ErrInsightsNotReady
	}
	answers, err := session.AnswerSet()
	if err != nil {
		log.Printf("Error decoding answers for session %s: %v", sessionID, err)
		return nil, utils.ErrExportFailed
	}

	var entries []response_models.ReportEntry
	for i, question := range catalog.Questions() {
		if question.Prompt == "" {
			continue
		}
		answer, ok := answers.Get(i)
		if !ok {
			continue
		}
		entries = append(entries, response_models.ReportEntry{
			Question: question.Prompt,
			Answer:   formatReportAnswer(answer),
		})
	}

	return &response_models.ReportDocument{
		Title:       reportTitle,
		GeneratedAt: s.now().Format("January 2, 2006"),
		Entries:     entries,
		Insights:    session.InsightText,
		Blocks:      utils.ParseInsightDocument(session.InsightText),
	}, nil
}

func formatReportAnswer(answer db_models.Answer) string {
	switch answer.Kind {
	case db_models.AnswerSelections:
		return strings.Join(answer.Selections, ", ")
	case db_models.AnswerScale:
		return strconv.Itoa(answer.Scale)
	default:
		return answer.Choice
	}
}
