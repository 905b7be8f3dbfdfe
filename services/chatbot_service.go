package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/symptom-survey/metrics"
	"github.com/blogem/symptom-survey/models"
	"github.com/blogem/symptom-survey/repositories"
)

// Fixed chatbot replies
const (
	NoDataAnswer   = "Os dados ainda não foram carregados. Por favor, insira algumas informações no formulário."
	HelpAnswer     = "Este chatbot pode responder perguntas sobre os gráficos de sintomas, regiões, idades, gêneros e outros dados coletados no formulário."
	FallbackAnswer = "Desculpe, não entendi a pergunta. Tente perguntar sobre sintomas, regiões, idades ou gêneros."
	errorAnswer    = "Desculpe, ocorreu um erro ao processar sua pergunta: %v"
)

// Rule names, used as metric labels
const (
	RuleNoData           = "no_data"
	RuleSymptomsByRegion = "symptoms_by_region"
	RuleTopSymptoms      = "top_symptoms"
	RuleAgeByRegion      = "age_by_region"
	RuleTopRegion        = "top_region"
	RuleMeanAge          = "mean_age"
	RuleGender           = "gender"
	RuleHelp             = "help"
	RuleFallback         = "fallback"
	RuleError            = "error"
)

// ChatAnswer is the reply to one question and the rule that produced it
type ChatAnswer struct {
	Rule string
	Text string
}

// ChatbotService answers free-text questions about the collected data
type ChatbotService interface {
	Answer(question string) ChatAnswer
}

type chatbotService struct {
	recordRepo repositories.RecordRepository
	log        *zap.Logger
}

// NewChatbotService creates a new chatbot service
func NewChatbotService(recordRepo repositories.RecordRepository, log *zap.Logger) ChatbotService {
	return &chatbotService{
		recordRepo: recordRepo,
		log:        log,
	}
}

// Answer re-reads every record and responds to question. Failures are
// reported in the answer text, never as an error.
func (s *chatbotService) Answer(question string) ChatAnswer {
	records, err := s.recordRepo.GetAll()

	var answer ChatAnswer
	if err != nil {
		answer = errorReply(err)
	} else {
		answer = Respond(records, question)
	}

	if answer.Rule == RuleError {
		s.log.Warn("chatbot failed to answer", zap.String("question", question), zap.String("answer", answer.Text))
	} else {
		s.log.Debug("chatbot answered", zap.String("question", question), zap.String("rule", answer.Rule))
	}
	metrics.RecordChatbotAnswer(answer.Rule)

	return answer
}

// chatRule pairs a keyword predicate with the handler that answers it
type chatRule struct {
	name    string
	matches func(question string) bool
	answer  func(records []models.Record) (string, error)
}

// chatRules are evaluated in order; the first match wins
var chatRules = []chatRule{
	{RuleSymptomsByRegion, all(mentionsSymptoms, mentionsRegion), symptomsByRegion},
	{RuleTopSymptoms, mentionsSymptoms, topSymptoms},
	{RuleAgeByRegion, all(mentionsAge, mentionsRegion), meanAgeByRegion},
	{RuleTopRegion, mentionsRegion, topRegion},
	{RuleMeanAge, mentionsAge, meanAge},
	{RuleGender, mentionsGender, genderDistribution},
	{RuleHelp, mentionsHelp, func([]models.Record) (string, error) { return HelpAnswer, nil }},
}

// Respond answers question from the given snapshot of records
func Respond(records []models.Record, question string) (answer ChatAnswer) {
	if len(records) == 0 {
		return ChatAnswer{Rule: RuleNoData, Text: NoDataAnswer}
	}

	defer func() {
		if r := recover(); r != nil {
			answer = errorReply(fmt.Errorf("%v", r))
		}
	}()

	q := strings.ToLower(question)
	for _, rule := range chatRules {
		if !rule.matches(q) {
			continue
		}

		text, err := rule.answer(records)
		if err != nil {
			return errorReply(err)
		}
		return ChatAnswer{Rule: rule.name, Text: text}
	}

	return ChatAnswer{Rule: RuleFallback, Text: FallbackAnswer}
}

func errorReply(err error) ChatAnswer {
	return ChatAnswer{Rule: RuleError, Text: fmt.Sprintf(errorAnswer, err)}
}

func containsAny(keywords ...string) func(string) bool {
	return func(q string) bool {
		for _, k := range keywords {
			if strings.Contains(q, k) {
				return true
			}
		}
		return false
	}
}

func all(preds ...func(string) bool) func(string) bool {
	return func(q string) bool {
		for _, p := range preds {
			if !p(q) {
				return false
			}
		}
		return true
	}
}

var (
	mentionsSymptoms = containsAny("sintomas")
	mentionsRegion   = containsAny("região", "regiao")
	mentionsAge      = containsAny("idade")
	mentionsGender   = containsAny("gênero", "genero")
	mentionsHelp     = containsAny("ajuda", "sobre")
)

// symptomsByRegion counts symptom entries per region
func symptomsByRegion(records []models.Record) (string, error) {
	index := make(map[string]int)
	var counts []Count
	for _, r := range records {
		i, ok := index[r.Region]
		if !ok {
			i = len(counts)
			index[r.Region] = i
			counts = append(counts, Count{Label: r.Region})
		}
		counts[i].Count += len(r.SymptomList())
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	lines := make([]string, len(counts))
	for i, c := range counts {
		lines[i] = fmt.Sprintf("%s: %d registros", c.Label, c.Count)
	}
	return "As regiões com mais registros de sintomas são:\n" + strings.Join(lines, "\n"), nil
}

func topSymptoms(records []models.Record) (string, error) {
	top := TopSymptoms(records, 3)

	parts := make([]string, len(top))
	for i, c := range top {
		parts[i] = fmt.Sprintf("%s (%d ocorrências)", c.Label, c.Count)
	}
	return "Os sintomas mais comuns registrados são: " + strings.Join(parts, ", "), nil
}

// meanAgeByRegion lists regions in ascending order
func meanAgeByRegion(records []models.Record) (string, error) {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range records {
		sums[r.Region] += r.Age
		counts[r.Region]++
	}

	regions := make([]string, 0, len(counts))
	for region := range counts {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	lines := make([]string, len(regions))
	for i, region := range regions {
		mean := float64(sums[region]) / float64(counts[region])
		lines[i] = fmt.Sprintf("%s: %.1f anos", region, mean)
	}
	return "A média de idade por região é:\n" + strings.Join(lines, "\n"), nil
}

func topRegion(records []models.Record) (string, error) {
	regions := RegionCounts(records)
	if len(regions) == 0 {
		return "", errors.New("no regions recorded")
	}
	top := regions[0]
	return fmt.Sprintf("A região com mais registros é %s, com %d ocorrências.", top.Label, top.Count), nil
}

func meanAge(records []models.Record) (string, error) {
	if len(records) == 0 {
		return "", errors.New("mean of empty age set")
	}
	sum := 0
	for _, r := range records {
		sum += r.Age
	}
	return fmt.Sprintf("A idade média dos participantes é %.1f anos.", float64(sum)/float64(len(records))), nil
}

func genderDistribution(records []models.Record) (string, error) {
	counts := GenderCounts(records)

	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s: %d", c.Label, c.Count)
	}
	return "A distribuição por gênero é a seguinte: " + strings.Join(parts, ", "), nil
}
