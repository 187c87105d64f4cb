package locale

import (
	"golang.org/x/text/language"
)

// Labels are the fixed UI strings of the podcast page.
type Labels struct {
	Lang            string
	TeaserAltPrefix string
	AllPodcasts     string
	ArrowAlt        string
	Imprint         string
	Privacy         string
	NotFound        string
}

var (
	english = Labels{
		Lang:            "en",
		TeaserAltPrefix: "Teaser image ",
		AllPodcasts:     "All WDR podcasts",
		ArrowAlt:        "Arrow",
		Imprint:         "Imprint",
		Privacy:         "Privacy",
		NotFound:        "This podcast could not be found.",
	}

	german = Labels{
		Lang:            "de",
		TeaserAltPrefix: "Teaser-Bild ",
		AllPodcasts:     "Alle WDR Podcasts",
		ArrowAlt:        "Pfeil",
		Imprint:         "Impressum",
		Privacy:         "Datenschutz",
		NotFound:        "Dieser Podcast wurde nicht gefunden.",
	}
)

type Resolver struct {
	matcher language.Matcher
	labels  []Labels
}

/*
NewResolver builds a resolver whose first entry is the fallback. An
unknown defaultLang falls back to English.
*/
func NewResolver(defaultLang string) Resolver {
	labels := []Labels{english, german}

	if defaultLang == german.Lang {
		labels = []Labels{german, english}
	}

	tags := make([]language.Tag, 0, len(labels))

	for _, l := range labels {
		tags = append(tags, language.Make(l.Lang))
	}

	return Resolver{
		matcher: language.NewMatcher(tags),
		labels:  labels,
	}
}

// Resolve chooses labels from an Accept-Language header value.
func (r Resolver) Resolve(acceptLanguage string) Labels {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)

	if err != nil || len(tags) == 0 {
		return r.labels[0]
	}

	_, index, confidence := r.matcher.Match(tags...)

	if confidence == language.No {
		return r.labels[0]
	}

	return r.labels[index]
}

func (r Resolver) Default() Labels {
	return r.labels[0]
}
