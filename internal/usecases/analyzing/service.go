package analyzing

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analyst-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ad-analyst-api/infrastructure/repository"
	"github.com/vfg2006/ad-analyst-api/internal/config"
	"github.com/vfg2006/ad-analyst-api/internal/domain"
	"github.com/vfg2006/ad-analyst-api/internal/usecases/diagnosing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Analyst é o orquestrador de análise: monta o contexto da conta, responde
// perguntas ad-hoc e gera o resumo diário idempotente
type Analyst interface {
	BuildContext(date time.Time) (*domain.ContextBundle, error)
	AnswerQuestion(ctx context.Context, question string, date time.Time) (*domain.AnswerResult, error)
	GenerateDailyOverview(ctx context.Context, date time.Time) (*domain.DailyOverview, error)
	EnsureDiagnostics(date time.Time) error
}

// Service implementa a interface Analyst
type Service struct {
	cfg                    *config.Config
	snapshotRepository     repository.SnapshotRepository
	eventsHealthRepository repository.EventsHealthRepository
	diagnosticRepository   repository.DiagnosticRepository
	overviewRepository     repository.OverviewRepository
	diagnoser              diagnosing.Diagnoser
	aiClient               openaiclient.Client
}

// NewService cria uma nova instância do serviço de análise
func NewService(
	cfg *config.Config,
	snapshotRepo repository.SnapshotRepository,
	eventsHealthRepo repository.EventsHealthRepository,
	diagnosticRepo repository.DiagnosticRepository,
	overviewRepo repository.OverviewRepository,
	diagnoser diagnosing.Diagnoser,
	aiClient openaiclient.Client,
) Analyst {
	return &Service{
		cfg:                    cfg,
		snapshotRepository:     snapshotRepo,
		eventsHealthRepository: eventsHealthRepo,
		diagnosticRepository:   diagnosticRepo,
		overviewRepository:     overviewRepo,
		diagnoser:              diagnoser,
		aiClient:               aiClient,
	}
}

// BuildContext monta o bundle de contexto para a data. A âncora é o snapshot
// mais recente com data <= date; sem âncora o bundle volta vazio, nunca erro.
func (s *Service) BuildContext(date time.Time) (*domain.ContextBundle, error) {
	snapshot, err := s.snapshotRepository.GetMostRecentAt(date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshot âncora: %w", err)
	}

	if snapshot == nil {
		return &domain.ContextBundle{}, nil
	}

	bundle := &domain.ContextBundle{
		CurrentSnapshot: domain.NewSnapshotContext(snapshot),
		HistoricalData:  []domain.SnapshotContext{},
		Diagnostics:     []domain.DiagnosticContext{},
	}

	historical, err := s.snapshotRepository.ListUpTo(snapshot.AccountID, date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico de snapshots: %w", err)
	}

	for _, past := range historical {
		bundle.HistoricalData = append(bundle.HistoricalData, *domain.NewSnapshotContext(past))
	}

	previous, err := s.snapshotRepository.GetMostRecentBefore(snapshot.AccountID, snapshot.Date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshot anterior: %w", err)
	}

	if previous != nil {
		bundle.PreviousSnapshot = domain.NewSnapshotContext(previous)
		bundle.Changes = computeChanges(snapshot, previous)
	}

	diagnostics, err := s.diagnosticRepository.GetByDate(snapshot.Date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar diagnósticos: %w", err)
	}

	for _, diagnostic := range diagnostics {
		bundle.Diagnostics = append(bundle.Diagnostics, domain.DiagnosticContext{
			Type:             diagnostic.Type,
			Metric:           diagnostic.MetricName,
			Severity:         diagnostic.Severity,
			Confidence:       diagnostic.Confidence,
			Explanation:      diagnostic.Explanation,
			Recommendation:   diagnostic.Recommendation,
			ChangePercentage: diagnostic.ChangePercentage,
		})
	}

	eventsHealth, err := s.eventsHealthRepository.GetAt(snapshot.Date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar saúde de eventos: %w", err)
	}

	if eventsHealth != nil {
		bundle.EventsHealth = &domain.EventsHealthContext{
			TrackingQualityScore: eventsHealth.QualityScore,
			EventsReceived:       eventsHealth.EventsReceived,
			EventsDropped:        eventsHealth.EventsDropped,
			EventsMatched:        eventsHealth.EventsMatched,
		}
	}

	return bundle, nil
}

// AnswerQuestion responde uma pergunta ad-hoc sobre a conta usando o bundle
// de contexto da data como única fonte de dados
func (s *Service) AnswerQuestion(ctx context.Context, question string, date time.Time) (*domain.AnswerResult, error) {
	bundle, err := s.BuildContext(date)
	if err != nil {
		return nil, err
	}

	contextJSON, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar contexto: %w", err)
	}

	userPrompt := fmt.Sprintf(answerUserPromptFormat, question, string(contextJSON))

	answer, err := s.aiClient.Complete(ctx, answerSystemPrompt, userPrompt)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date":  date.Format("2006-01-02"),
			"error": err.Error(),
		}).Error("analyst: failed to generate answer")
		return nil, err
	}

	return &domain.AnswerResult{
		Answer:      answer,
		ContextUsed: bundle,
		Model:       s.aiClient.Model(),
	}, nil
}

// GenerateDailyOverview gera (ou devolve do cache) o resumo do dia. Existindo
// um registro para a data, ele volta como está e o modelo não é chamado de
// novo. A corrida entre dois geradores é decidida pela unicidade no banco:
// quem perde relê o vencedor.
func (s *Service) GenerateDailyOverview(ctx context.Context, date time.Time) (*domain.DailyOverview, error) {
	existing, err := s.overviewRepository.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar resumo existente: %w", err)
	}

	if existing != nil {
		return existing, nil
	}

	if err := s.EnsureDiagnostics(date); err != nil {
		return nil, err
	}

	bundle, err := s.BuildContext(date)
	if err != nil {
		return nil, err
	}

	contextJSON, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar contexto: %w", err)
	}

	userPrompt := fmt.Sprintf(overviewUserPromptFormat, date.Format("2006-01-02"), string(contextJSON))

	content, err := s.aiClient.Complete(ctx, overviewSystemPrompt, userPrompt)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date":  date.Format("2006-01-02"),
			"error": err.Error(),
		}).Error("analyst: failed to generate daily overview")
		return nil, err
	}

	overview, err := parseOverview(date, content)
	if err != nil {
		return nil, err
	}

	if err := s.overviewRepository.Insert(overview); err != nil {
		if err == domain.ErrAlreadyExists {
			// Outro gerador venceu a corrida; o registro dele é o canônico
			return s.overviewRepository.GetByDate(date)
		}
		return nil, fmt.Errorf("erro ao persistir resumo: %w", err)
	}

	saved, err := s.overviewRepository.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("erro ao reler resumo persistido: %w", err)
	}
	if saved != nil {
		return saved, nil
	}

	return overview, nil
}

// EnsureDiagnostics computa e persiste os diagnósticos da âncora da data
// quando a data dela ainda não tem nenhum. Já existindo diagnósticos, nada é
// recalculado
func (s *Service) EnsureDiagnostics(date time.Time) error {
	snapshot, err := s.snapshotRepository.GetMostRecentAt(date)
	if err != nil {
		return fmt.Errorf("erro ao buscar snapshot âncora: %w", err)
	}

	if snapshot == nil {
		return nil
	}

	existing, err := s.diagnosticRepository.GetByDate(snapshot.Date)
	if err != nil {
		return fmt.Errorf("erro ao buscar diagnósticos: %w", err)
	}

	if len(existing) > 0 {
		return nil
	}

	results := s.diagnoser.ComputeAllDiagnostics(snapshot)
	for _, result := range results {
		if err := s.diagnosticRepository.Save(result); err != nil {
			logrus.WithFields(logrus.Fields{
				"diagnostic_type": result.Type,
				"date":            result.Date.Format("2006-01-02"),
				"error":           err.Error(),
			}).Error("analyst: failed to persist diagnostic")
		}
	}

	return nil
}

func computeChanges(current, previous *domain.AccountSnapshot) *domain.ChangesContext {
	// Sem spend anterior não há base de comparação confiável
	if previous.Spend <= 0 {
		return nil
	}

	changes := &domain.ChangesContext{
		SpendChange: ((current.Spend - previous.Spend) / previous.Spend) * 100,
	}

	if previous.Impressions > 0 {
		changes.ImpressionsChange = ((float64(current.Impressions) - float64(previous.Impressions)) / float64(previous.Impressions)) * 100
	}

	if previous.Clicks > 0 {
		changes.ClicksChange = ((float64(current.Clicks) - float64(previous.Clicks)) / float64(previous.Clicks)) * 100
	}

	if current.CPM != nil && previous.CPM != nil && *previous.CPM > 0 {
		cpmChange := ((*current.CPM - *previous.CPM) / *previous.CPM) * 100
		changes.CPMChange = &cpmChange
	}

	return changes
}

// parseOverview valida a resposta do modelo contra o formato exigido.
// Cercas de código nas bordas são toleradas e removidas antes do parse.
func parseOverview(date time.Time, content string) (*domain.DailyOverview, error) {
	cleaned := stripCodeFences(content)

	payload := struct {
		Summary         *string                 `json:"summary"`
		KeyChanges      []domain.KeyChange      `json:"key_changes"`
		Insights        []domain.Insight        `json:"insights"`
		Recommendations []domain.Recommendation `json:"recommendations"`
	}{}

	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &ModelOutputError{Date: date, Reason: err.Error()}
	}

	if payload.Summary == nil {
		return nil, &ModelOutputError{Date: date, Reason: "campo obrigatório ausente: summary"}
	}

	overview := &domain.DailyOverview{
		Date:            date,
		Summary:         *payload.Summary,
		KeyChanges:      payload.KeyChanges,
		Insights:        payload.Insights,
		Recommendations: payload.Recommendations,
	}

	if overview.KeyChanges == nil {
		overview.KeyChanges = []domain.KeyChange{}
	}
	if overview.Insights == nil {
		overview.Insights = []domain.Insight{}
	}
	if overview.Recommendations == nil {
		overview.Recommendations = []domain.Recommendation{}
	}

	return overview, nil
}

func stripCodeFences(content string) string {
	cleaned := strings.TrimSpace(content)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	}
	if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:len(cleaned)-len("```")]
	}

	return strings.TrimSpace(cleaned)
}
