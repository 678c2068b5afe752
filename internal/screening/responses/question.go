package responses

import (
	"cmp"
	"maps"
	"slices"

	"cobalt/internal/format"
	"cobalt/internal/l10n"
	"cobalt/internal/screening/models"
	dErrors "cobalt/pkg/domain-errors"
)

var (
	msgMinimumAnswers = &l10n.Message{
		ID:    "ScreeningMinimumAnswers",
		One:   "Choose at least {{.Count}} answer",
		Other: "Choose at least {{.Count}} answers",
	}
	msgMaximumAnswers = &l10n.Message{
		ID:    "ScreeningMaximumAnswers",
		One:   "Choose up to {{.Count}} answer",
		Other: "Choose up to {{.Count}} answers",
	}
)

type ScreeningQuestionResponse struct {
	ScreeningQuestionID                string                           `json:"screeningQuestionId"`
	ScreeningVersionID                 string                           `json:"screeningVersionId"`
	ScreeningAnswerFormatID            string                           `json:"screeningAnswerFormatId"`
	ScreeningAnswerContentHintID       string                           `json:"screeningAnswerContentHintId"`
	ScreeningQuestionSubmissionStyleID string                           `json:"screeningQuestionSubmissionStyleId"`
	QuestionText                       string                           `json:"questionText"`
	SupplementText                     *string                          `json:"supplementText,omitempty"`
	IntroText                          *string                          `json:"introText,omitempty"`
	FooterText                         *string                          `json:"footerText,omitempty"`
	MinimumAnswerCount                 int                              `json:"minimumAnswerCount"`
	MinimumAnswerCountDescription      string                           `json:"minimumAnswerCountDescription"`
	MaximumAnswerCount                 int                              `json:"maximumAnswerCount"`
	MaximumAnswerCountDescription      string                           `json:"maximumAnswerCountDescription"`
	AnswerCountInstructions            *string                          `json:"answerCountInstructions,omitempty"`
	PreferAutosubmit                   bool                             `json:"preferAutosubmit"`
	DisplayOrder                       int                              `json:"displayOrder"`
	Metadata                           map[string]any                   `json:"metadata"`
	ScreeningAnswerOptions             []*ScreeningAnswerOptionResponse `json:"screeningAnswerOptions"`
}

// NewScreeningQuestionResponse renders a question with its answer options in display order.
// Instructions are only set when the question accepts more than one answer.
func NewScreeningQuestionResponse(f *format.Formatter, question *models.ScreeningQuestion) (*ScreeningQuestionResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if question == nil {
		return nil, dErrors.Required("screening question")
	}

	metadata := make(map[string]any, len(question.Metadata))
	maps.Copy(metadata, question.Metadata)

	r := &ScreeningQuestionResponse{
		ScreeningQuestionID:                question.ID.String(),
		ScreeningVersionID:                 question.ScreeningVersionID.String(),
		ScreeningAnswerFormatID:            question.AnswerFormatID,
		ScreeningAnswerContentHintID:       question.AnswerContentHintID,
		ScreeningQuestionSubmissionStyleID: question.SubmissionStyleID,
		QuestionText:                       question.QuestionText,
		SupplementText:                     question.SupplementText,
		IntroText:                          question.IntroText,
		FooterText:                         question.FooterText,
		MinimumAnswerCount:                 question.MinimumAnswerCount,
		MinimumAnswerCountDescription:      f.FormatInteger(int64(question.MinimumAnswerCount)),
		MaximumAnswerCount:                 question.MaximumAnswerCount,
		MaximumAnswerCountDescription:      f.FormatInteger(int64(question.MaximumAnswerCount)),
		PreferAutosubmit:                   question.PreferAutosubmit,
		DisplayOrder:                       question.DisplayOrder,
		Metadata:                           metadata,
		ScreeningAnswerOptions:             make([]*ScreeningAnswerOptionResponse, 0, len(question.AnswerOptions)),
	}

	switch {
	case question.MaximumAnswerCount <= 1:
	case question.MinimumAnswerCount > 1:
		s := f.Plural(msgMinimumAnswers, question.MinimumAnswerCount, nil)
		r.AnswerCountInstructions = &s
	default:
		s := f.Plural(msgMaximumAnswers, question.MaximumAnswerCount, nil)
		r.AnswerCountInstructions = &s
	}

	for _, option := range sortedOptions(question.AnswerOptions) {
		o, err := NewScreeningAnswerOptionResponse(f, option)
		if err != nil {
			return nil, err
		}
		r.ScreeningAnswerOptions = append(r.ScreeningAnswerOptions, o)
	}
	return r, nil
}

type ScreeningAnswerOptionResponse struct {
	ScreeningAnswerOptionID         string         `json:"screeningAnswerOptionId"`
	ScreeningQuestionID             string         `json:"screeningQuestionId"`
	AnswerOptionText                *string        `json:"answerOptionText,omitempty"`
	FreeformSupplement              bool           `json:"freeformSupplement"`
	FreeformSupplementText          *string        `json:"freeformSupplementText,omitempty"`
	FreeformSupplementContentHintID *string        `json:"freeformSupplementContentHintId,omitempty"`
	FreeformSupplementTextAutoShow  bool           `json:"freeformSupplementTextAutoShow"`
	Score                           *int           `json:"score,omitempty"`
	ScoreDescription                *string        `json:"scoreDescription,omitempty"`
	DisplayOrder                    int            `json:"displayOrder"`
	Metadata                        map[string]any `json:"metadata,omitempty"`
}

func NewScreeningAnswerOptionResponse(f *format.Formatter, option *models.ScreeningAnswerOption) (*ScreeningAnswerOptionResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if option == nil {
		return nil, dErrors.Required("screening answer option")
	}
	r := &ScreeningAnswerOptionResponse{
		ScreeningAnswerOptionID:         option.ID.String(),
		ScreeningQuestionID:             option.ScreeningQuestionID.String(),
		AnswerOptionText:                option.AnswerOptionText,
		FreeformSupplement:              option.FreeformSupplement,
		FreeformSupplementText:          option.FreeformSupplementText,
		FreeformSupplementContentHintID: option.FreeformSupplementContentHint,
		FreeformSupplementTextAutoShow:  option.FreeformSupplementTextAutoShow,
		Score:                           option.Score,
		DisplayOrder:                    option.DisplayOrder,
		Metadata:                        option.Metadata,
	}
	if option.Score != nil {
		s := f.FormatInteger(int64(*option.Score))
		r.ScoreDescription = &s
	}
	return r, nil
}

func sortedOptions(options []*models.ScreeningAnswerOption) []*models.ScreeningAnswerOption {
	sorted := make([]*models.ScreeningAnswerOption, len(options))
	copy(sorted, options)
	slices.SortStableFunc(sorted, func(a, b *models.ScreeningAnswerOption) int {
		return cmp.Compare(a.DisplayOrder, b.DisplayOrder)
	})
	return sorted
}
