package ui

import "github.com/AlecAivazis/survey/v2"

// SurveyOptions is the option set every survey prompt is asked with.
func SurveyOptions() []survey.AskOpt {
	return []survey.AskOpt{
		survey.WithIcons(func(icons *survey.IconSet) {
			icons.Question.Text = "-"
			icons.Question.Format = "cyan+b"
		}),
		survey.WithShowCursor(true),
	}
}
