// Package chat produces the canned assistant replies shown in the panel.
package chat

import (
	"github.com/valyala/fasttemplate"
)

// Supported reply languages.
const (
	LangEnglish = "en"
	LangBengali = "bn"
)

const (
	tmplBot     = "bot"
	tmplMessage = "message"
)

var replyTemplates = map[string]string{
	LangEnglish: `I am {{bot}}. You asked: "{{message}}". I can help you manage your dashboard features and bot controls.`,
	LangBengali: `আমি শৌরভ এআই। আপনি জিজ্ঞেস করেছেন: "{{message}}"। আমি আপনাকে ড্যাশবোর্ড নিয়ন্ত্রণে সাহায্য করতে পারি।`,
}

// Responder renders replies from per-language templates.
type Responder struct {
	botName   string
	templates map[string]*fasttemplate.Template
}

// NewResponder compiles the reply templates for botName.
func NewResponder(botName string) *Responder {
	r := &Responder{
		botName:   botName,
		templates: make(map[string]*fasttemplate.Template, len(replyTemplates)),
	}
	for lang, text := range replyTemplates {
		r.templates[lang] = fasttemplate.New(text, "{{", "}}")
	}
	return r
}

// Supports reports whether lang has a reply template.
func (r *Responder) Supports(lang string) bool {
	_, ok := r.templates[lang]
	return ok
}

// Reply returns the reply to message in lang. Unknown languages fall back to English.
func (r *Responder) Reply(message, lang string) string {
	t, ok := r.templates[lang]
	if !ok {
		t = r.templates[LangEnglish]
	}
	return t.ExecuteString(map[string]interface{}{
		tmplBot:     r.botName,
		tmplMessage: message,
	})
}
