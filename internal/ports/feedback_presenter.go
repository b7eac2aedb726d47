package ports

import "github.com/bnema/multicart-cli/internal/domain"

type FeedbackPresenter interface {
	Show(tone domain.Tone, message string)
	SetRemoveAllVisible(visible bool)
}
