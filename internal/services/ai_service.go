package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"edumate_go_backend/internal/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
)

// Completer is the single abstraction over the underlying LLM API. Tasks
// that expect structured output set jsonOutput so the model is asked for a
// machine-parseable response.
type Completer interface {
	Complete(ctx context.Context, prompt string, jsonOutput bool) (string, error)
}

// GenAICompleter implements Completer on top of the GenAI client.
type GenAICompleter struct {
	client    *genai.Client
	modelName string
}

func NewGenAICompleter(client *genai.Client, modelName string) *GenAICompleter {
	return &GenAICompleter{client: client, modelName: modelName}
}

func (g *GenAICompleter) Complete(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	if jsonOutput {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// AIService translates domain requests into prompt-templated completion
// calls. Transport failures are wrapped with a human-readable description;
// unparseable structured output degrades to empty lists or placeholder
// strings rather than surfacing a parse error.
type AIService struct {
	completer Completer
	modelName string
}

func NewAIService(completer Completer, modelName string) *AIService {
	return &AIService{completer: completer, modelName: modelName}
}

type ChatResponse struct {
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}

type AssessmentQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
}

type PDFAnalysis struct {
	Subject string   `json:"subject"`
	Topics  []string `json:"topics"`
	Summary string   `json:"summary"`
}

const (
	SummaryTypeGeneral         = "general"
	SummaryTypeWeaknesses      = "weaknesses"
	SummaryTypeForgottenPoints = "forgotten_points"
	SummaryTypeClarifications  = "clarifications"
)

// ValidSummaryType reports whether t is one of the four summary sub-modes.
func ValidSummaryType(t string) bool {
	switch t {
	case SummaryTypeGeneral, SummaryTypeWeaknesses, SummaryTypeForgottenPoints, SummaryTypeClarifications:
		return true
	}
	return false
}

// GenerateChatResponse produces one tutoring turn. history carries the last
// messages of the session, oldest first, as bounded conversational context.
func (s *AIService) GenerateChatResponse(ctx context.Context, message string, history []models.ChatMessage, subject string) (*ChatResponse, error) {
	var prompt strings.Builder
	prompt.WriteString(`أنت مساعد تعليمي ذكي باللغة العربية متخصص في التعليم الأكاديمي. مهمتك هي:
1. مساعدة الطلاب في فهم المواد الدراسية
2. توليد أسئلة تقييمية مناسبة
3. تحليل نقاط الضعف وتقديم التوصيات
4. الإجابة على الاستفسارات الأكاديمية بوضوح
`)
	if subject != "" {
		prompt.WriteString("\nالتخصص الحالي: " + subject + "\n")
	}
	if len(history) > 0 {
		prompt.WriteString("\nسياق المحادثة السابقة:\n")
		for _, msg := range history {
			speaker := "الطالب"
			if msg.Role == models.MessageRoleAssistant {
				speaker = "المساعد"
			}
			prompt.WriteString(speaker + ": " + msg.Content + "\n")
		}
	}
	prompt.WriteString("\nتأكد من الإجابة باللغة العربية وبطريقة واضحة ومفيدة للطالب.\n\nالطالب: " + message)

	content, err := s.completer.Complete(ctx, prompt.String(), false)
	if err != nil {
		return nil, fmt.Errorf("فشل في الحصول على استجابة من المساعد الذكي: %v", err)
	}

	return &ChatResponse{
		Content: content,
		Metadata: map[string]interface{}{
			"model":     s.modelName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"subject":   subject,
		},
	}, nil
}

// GenerateAssessmentQuestions asks for count multiple-choice items. A
// malformed model response yields an empty list, never a parse error.
func (s *AIService) GenerateAssessmentQuestions(ctx context.Context, subject, chapter, difficulty string, count int) ([]AssessmentQuestion, error) {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "قم بإنشاء %d أسئلة اختيار من متعدد باللغة العربية للموضوع التالي:\nالموضوع: %s\n", count, subject)
	if chapter != "" {
		fmt.Fprintf(&prompt, "الفصل: %s\n", chapter)
	}
	fmt.Fprintf(&prompt, `مستوى الصعوبة: %s

يجب أن تكون الأسئلة:
1. واضحة ومحددة
2. لها 4 خيارات (أ، ب، ج، د)
3. إجابة واحدة صحيحة فقط
4. مع شرح للإجابة الصحيحة

أرجع النتيجة بصيغة JSON مع هذا التنسيق:
{
  "questions": [
    {
      "question": "نص السؤال",
      "options": ["أ) الخيار الأول", "ب) الخيار الثاني", "ج) الخيار الثالث", "د) الخيار الرابع"],
      "correctAnswer": 0,
      "explanation": "شرح الإجابة الصحيحة",
      "difficulty": "%s"
    }
  ]
}`, difficulty, difficulty)

	raw, err := s.completer.Complete(ctx, prompt.String(), true)
	if err != nil {
		return nil, fmt.Errorf("فشل في توليد الأسئلة التقييمية: %v", err)
	}

	var parsed struct {
		Questions []AssessmentQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		log.Warn().Err(err).Msg("unparseable question list from model, returning empty list")
		return []AssessmentQuestion{}, nil
	}
	if parsed.Questions == nil {
		return []AssessmentQuestion{}, nil
	}
	return parsed.Questions, nil
}

// AnswerResult is one right/wrong outcome fed to the weakness analysis.
type AnswerResult struct {
	QuestionID int
	Correct    bool
}

// AnalyzeWeaknesses extracts weak areas and recommendations for an already
// computed score. Score arithmetic never happens here.
func (s *AIService) AnalyzeWeaknesses(ctx context.Context, subject, chapter string, score float64, totalQuestions, correctAnswers int, results []AnswerResult) ([]string, []string, error) {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "حلل أداء الطالب التالي وحدد نقاط الضعف والتوصيات:\n\nالموضوع: %s\n", subject)
	if chapter != "" {
		fmt.Fprintf(&prompt, "الفصل: %s\n", chapter)
	}
	fmt.Fprintf(&prompt, "عدد الأسئلة الكلي: %d\nالإجابات الصحيحة: %d\nالنسبة: %.2f%%\n\nالأسئلة والإجابات:\n", totalQuestions, correctAnswers, score)
	for i, r := range results {
		outcome := "خطأ"
		if r.Correct {
			outcome = "صحيح"
		}
		fmt.Fprintf(&prompt, "السؤال %d: %s\n", i+1, outcome)
	}
	prompt.WriteString(`
حدد:
1. نقاط الضعف الرئيسية (إذا كانت النسبة أقل من 60%)
2. التوصيات للتحسين
3. المواضيع التي تحتاج مراجعة

أرجع النتيجة بصيغة JSON:
{
  "weakAreas": ["نقطة ضعف 1", "نقطة ضعف 2"],
  "recommendations": ["توصية 1", "توصية 2", "توصية 3"]
}`)

	raw, err := s.completer.Complete(ctx, prompt.String(), true)
	if err != nil {
		return nil, nil, fmt.Errorf("فشل في تحليل الأداء: %v", err)
	}

	var parsed struct {
		WeakAreas       []string `json:"weakAreas"`
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		log.Warn().Err(err).Msg("unparseable weakness analysis from model, returning empty lists")
		return []string{}, []string{}, nil
	}
	if parsed.WeakAreas == nil {
		parsed.WeakAreas = []string{}
	}
	if parsed.Recommendations == nil {
		parsed.Recommendations = []string{}
	}
	return parsed.WeakAreas, parsed.Recommendations, nil
}

// GenerateSummary produces a personalized summary in one of four sub-modes.
func (s *AIService) GenerateSummary(ctx context.Context, content string, focusAreas []string, summaryType string) (string, error) {
	var prompt string
	switch summaryType {
	case SummaryTypeWeaknesses:
		prompt = "اكتب ملخصاً يركز على نقاط الضعف التي يجب تقويتها من المحتوى التالي:\n\n" + content
	case SummaryTypeForgottenPoints:
		prompt = "اكتب ملخصاً للنقاط المهمة التي قد ينساها الطالب من المحتوى التالي:\n\n" + content
	case SummaryTypeClarifications:
		prompt = "اكتب ملخصاً يوضح النقاط الغامضة والمعقدة من المحتوى التالي:\n\n" + content
	default:
		prompt = "اكتب ملخصاً شاملاً للمحتوى التالي:\n\n" + content
	}
	if len(focusAreas) > 0 {
		prompt += "\n\nركز على هذه المناطق: " + strings.Join(focusAreas, ", ")
	}

	summary, err := s.completer.Complete(ctx, prompt, false)
	if err != nil {
		return "", fmt.Errorf("فشل في إنشاء الملخص: %v", err)
	}
	if summary == "" {
		return "لا يمكن إنشاء الملخص في الوقت الحالي.", nil
	}
	return summary, nil
}

// pdfContentLimit bounds how much extracted text is sent for analysis.
const pdfContentLimit = 2000

// AnalyzePDFContent classifies an uploaded document: subject, main topics
// and a short summary. Missing fields degrade to placeholders.
func (s *AIService) AnalyzePDFContent(ctx context.Context, content, fileName string) (*PDFAnalysis, error) {
	excerpt := content
	if runes := []rune(excerpt); len(runes) > pdfContentLimit {
		excerpt = string(runes[:pdfContentLimit]) + "..."
	}

	prompt := fmt.Sprintf(`حلل محتوى هذا الملف الأكاديمي وحدد:
1. الموضوع/المادة الدراسية
2. المواضيع الرئيسية المغطاة
3. ملخص مختصر للمحتوى

اسم الملف: %s
المحتوى:
%s

أرجع النتيجة بصيغة JSON:
{
  "subject": "اسم المادة/الموضوع",
  "topics": ["موضوع 1", "موضوع 2", "موضوع 3"],
  "summary": "ملخص مختصر للمحتوى"
}`, fileName, excerpt)

	raw, err := s.completer.Complete(ctx, prompt, true)
	if err != nil {
		return nil, fmt.Errorf("فشل في تحليل محتوى الملف: %v", err)
	}

	analysis := &PDFAnalysis{}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), analysis); err != nil {
		log.Warn().Err(err).Str("fileName", fileName).Msg("unparseable document analysis from model, using placeholders")
	}
	if analysis.Subject == "" {
		analysis.Subject = "غير محدد"
	}
	if analysis.Topics == nil {
		analysis.Topics = []string{}
	}
	if analysis.Summary == "" {
		analysis.Summary = "لا يوجد ملخص متاح"
	}
	return analysis, nil
}

var translationLanguages = map[string]string{
	"ar": "العربية",
	"en": "الإنجليزية",
}

// ValidTargetLanguage reports whether lang is one of the two supported
// translation targets.
func ValidTargetLanguage(lang string) bool {
	_, ok := translationLanguages[lang]
	return ok
}

// TranslateContent translates between Arabic and English, preserving
// academic terminology.
func (s *AIService) TranslateContent(ctx context.Context, content, targetLanguage string) (string, error) {
	language, ok := translationLanguages[targetLanguage]
	if !ok {
		language = translationLanguages["ar"]
	}

	prompt := fmt.Sprintf("ترجم النص التالي إلى اللغة %s مع الحفاظ على المصطلحات الأكاديمية والعلمية:\n\n%s", language, content)

	translation, err := s.completer.Complete(ctx, prompt, false)
	if err != nil {
		return "", fmt.Errorf("فشل في ترجمة المحتوى: %v", err)
	}
	return translation, nil
}

// stripCodeFences removes a surrounding markdown code fence that some models
// wrap around JSON output even when asked for raw JSON.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
