package domain

import "strings"

// BenchmarkSourceStatic marks benchmarks that come from the built-in table.
const BenchmarkSourceStatic = "static"

const benchmarkDefaultKey = "default"

// BenchmarkTable maps normalized category keys to an industry-average total score.
// It always carries a "default" entry.
type BenchmarkTable struct {
	scores map[string]int
}

// DefaultBenchmarks returns the built-in industry averages.
func DefaultBenchmarks() BenchmarkTable {
	return BenchmarkTable{scores: map[string]int{
		"restaurant":   75,
		"cafe":         72,
		"bar":          70,
		"barber_shop":  72,
		"hair_care":    72,
		"beauty_salon": 74,
		"spa":          76,
		"gym":          71,
		"hotel":        78,
		"retail":       68,
		"default":      70,
	}}
}

// With returns a copy of t with overrides applied. Override keys are normalized.
func (t BenchmarkTable) With(overrides map[string]int) BenchmarkTable {
	scores := make(map[string]int, len(t.scores)+len(overrides))
	for k, v := range t.scores {
		scores[k] = v
	}
	for k, v := range overrides {
		scores[NormalizeCategory(k)] = v
	}
	return BenchmarkTable{scores: scores}
}

// Lookup returns the average for a raw category label and whether it matched
// a specific entry rather than the default.
func (t BenchmarkTable) Lookup(category string) (int, bool) {
	if v, ok := t.scores[NormalizeCategory(category)]; ok {
		return v, true
	}
	return t.scores[benchmarkDefaultKey], false
}

// Default returns the fallback average.
func (t BenchmarkTable) Default() int {
	return t.scores[benchmarkDefaultKey]
}

// Entries returns a copy of the table.
func (t BenchmarkTable) Entries() map[string]int {
	out := make(map[string]int, len(t.scores))
	for k, v := range t.scores {
		out[k] = v
	}
	return out
}

// NormalizeCategory lowercases a category label and replaces spaces with underscores.
func NormalizeCategory(category string) string {
	return strings.ReplaceAll(strings.ToLower(category), " ", "_")
}

// LossMessages is the module-level impact narrative used when no keyword matches.
var LossMessages = map[Module]string{
	ModuleBusinessProfile: "Unvollständige Profile wirken unprofessionell. Studien zeigen, dass 70% der Kunden Unternehmen ohne hinterlegte Website oder klare Öffnungszeiten sofort überspringen und zur Konkurrenz gehen.",
	ModuleReviews:         "Da Ihre Bewertung unter 4.5 Sternen liegt oder viele Rezensionen unbeantwortet sind, wählen laut Statistik bis zu 45% der potenziellen Kunden lieber einen Mitbewerber in Ihrer Nähe, der aktiver auf Feedback reagiert.",
	ModuleWebsite:         "Jede Sekunde Verzögerung reduziert Ihre Conversion-Rate um 7%. Bei Ihrer aktuellen Ladezeit verlassen frustrierte Besucher Ihre Seite, noch bevor sie Ihr Angebot überhaupt gesehen haben.",
	ModuleMobile:          "80% der lokalen Suchen erfolgen mobil. Ohne eine 'Click-to-Call' Funktion verlieren Sie Kunden genau in dem Moment, in dem sie bereit sind, bei Ihnen zu kaufen oder zu buchen.",
	ModuleSocial:          "Ein inaktiver Social-Media-Kanal wirkt wie ein geschlossenes Geschäft. Sie verpassen monatlich Tausende von kostenlosen Impressionen und den Kontakt zu Ihrer Zielgruppe.",
	ModuleCompetitors:     "Ihre Top-3 Konkurrenten ziehen aktuell 3-mal mehr Aufmerksamkeit auf sich als Sie. Ohne sofortige Korrektur festigt sich dieser Marktanteilsverlust dauerhaft zu Ihren Ungunsten.",
}

// ImpactRule attaches an impact narrative to issues containing Keyword.
type ImpactRule struct {
	Keyword string
	Impact  string
}

// ImpactRules is scanned in order; the first rule whose keyword is a
// case-sensitive substring of the issue wins.
var ImpactRules = []ImpactRule{
	// mobile
	{"Mobile Geschwindigkeit konnte nicht", "Ohne messbare Ladezeit können Sie nicht optimieren. Ihre mobilen Besucher verlassen frustriert Ihre Seite und wechseln zur Konkurrenz."},
	{"Kritische Mobile Ladezeit", "Jede Sekunde über 3s kostet Sie 50% Ihrer mobilen Besucher. Bei mobilen Suchen ist Geschwindigkeit der wichtigste Ranking-Faktor."},
	{"Keine HTTPS Verschlüsselung", "Browser warnen Besucher vor unsicheren Seiten. 84% verlassen sofort eine Website mit Sicherheitswarnung. Google straft HTTP-Seiten im Ranking ab."},
	{"Instabile Seitenlayout", "Springende Elemente beim Laden frustrieren Nutzer massiv. Google bestraft instabile Layouts mit schlechteren Rankings - Sie verlieren Sichtbarkeit."},
	{"Schrift zu klein", "Unleserliche Texte auf Smartphones zwingen 68% der Besucher zum sofortigen Verlassen. Ihre Botschaft kommt nie an."},
	{"Buttons zu klein", "Zu kleine Klickflächen führen zu Fehltipps und Frust. 73% der mobilen Nutzer brechen ab, wenn sie Buttons nicht präzise treffen können."},
	{"Fehlende Click-to-Call", "80% der mobilen Suchen erfolgen mit Kaufabsicht. Ohne Click-to-Call-Button verlieren Sie Kunden im entscheidenden Moment - ein Tap zur Konkurrenz."},
	{"Keine Website", "Ohne Website können Kunden Ihr Angebot nicht online prüfen. Sie verlieren 92% der Research-Phase und damit das Vertrauen potentieller Kunden."},

	// website performance
	{"Desktop Ladezeit", "Langsame Desktop-Ladezeiten kosten Conversions. Jede Sekunde Verzögerung reduziert Ihre Abschlussrate um 7% - verlorener Umsatz."},
	{"Kritische Desktop Ladezeit", "Bei über 4 Sekunden Ladezeit verlassen 75% Ihrer Besucher die Seite vor dem ersten Inhalt. Verschenktes Marketing-Budget."},

	// reviews
	{"Durchschnittsbewertung unter", "Bewertungen unter 4.3 Sternen wirken abschreckend. 86% der Konsumenten meiden Unternehmen mit niedrigen Ratings - direkt zur Konkurrenz."},
	{"unbeantwortet", "Google bevorzugt Unternehmen mit hoher Interaktionsrate im Ranking. Jede unbeantwortete Bewertung schadet Ihrer Sichtbarkeit."},
	{"Keine Bewertungen", "Ohne Bewertungen fehlt Social Proof. 93% der Kunden vertrauen Bewertungen wie persönlichen Empfehlungen - Sie starten ohne Vertrauen."},

	// business profile
	{"Keine Website hinterlegt", "Profile ohne Website-Link verlieren 67% der interessierten Klicks. Google zeigt Sie seltener an, wenn Profil-Informationen fehlen."},
	{"Fehlende Öffnungszeiten", "Kunden erwarten sofort erkennbare Öffnungszeiten. 58% wählen ein Geschäft mit vollständigen Öffnungszeiten gegenüber unklaren Angaben."},
	{"Keine Telefonnummer", "Ohne Telefonnummer verlieren Sie spontane Anfragen. 40% der lokalen Suchen enden in einem Anruf innerhalb von 24 Stunden."},
	{"Wenige oder keine Fotos", "Unternehmen mit Fotos erhalten 42% mehr Anfragen nach Wegbeschreibungen und 35% mehr Klicks auf ihre Website."},

	// social media
	{"Kein Facebook Profil", "Über 2 Mrd. Menschen nutzen Facebook monatlich. Ohne Präsenz verpassen Sie kostenlosen Zugang zu Ihrer lokalen Community."},
	{"Kein Instagram Profil", "Instagram-Nutzer haben 70% höhere Kaufkraft. Besonders bei visuellen Branchen verlieren Sie hochwertige Leads."},
	{"Instagram seit", "Inaktive Profile wirken wie geschlossene Geschäfte. Follower verlieren das Interesse - Ihre Marke gerät in Vergessenheit."},
	{"Facebook seit", "Veraltete Inhalte schaden Ihrem Image. Kunden zweifeln an Ihrer Aktualität und Erreichbarkeit - Vertrauensverlust."},

	// review response rate
	{"Ihre Konkurrenten antworten", "Kunden vergleichen aktiv! Wenn Ihre Konkurrenz auf Bewertungen reagiert und Sie nicht, wirken Sie desinteressiert. Das kostet Neukunden."},
	{"Antwortrate", "Unbeantwortete Bewertungen signalisieren mangelnde Wertschätzung. 70% der Kunden erwarten eine Antwort - Ihr Schweigen treibt sie zur Konkurrenz."},

	// photo competition
	{"Ihre Konkurrenten haben durchschnittlich", "Mehr Fotos = mehr Vertrauen = mehr Klicks. Businesses mit 100+ Fotos erhalten 520% mehr Anrufe als solche mit wenigen Bildern."},
	{"Konkurrenten haben durchschnittlich", "Visuelle Präsenz entscheidet in Sekunden. Kunden wählen Profile mit vielen authentischen Fotos - Ihre Konkurrenz gewinnt den ersten Eindruck."},
	{"mehr Fotos", "Jedes zusätzliche Foto erhöht Ihre Chance auf Klicks um 3%. Ihre Konkurrenz nutzt das aus - Sie fallen visuell zurück."},

	// competitors
	{"Konkurrent", "Ihre Wettbewerber haben bessere Online-Präsenz und höhere Rankings. Sie verlieren systematisch Marktanteile an sichtbarere Konkurrenten."},
	{"durchschnittlich", "Unterdurchschnittliche Performance bedeutet weniger Klicks, weniger Anfragen, weniger Umsatz. Ihre Konkurrenten profitieren von Ihrer Schwäche."},
}

// ImpactFor resolves the estimated-loss narrative of an issue raised by m.
func ImpactFor(issue string, m Module) string {
	for _, r := range ImpactRules {
		if strings.Contains(issue, r.Keyword) {
			return r.Impact
		}
	}
	return LossMessages[m]
}

var callsToAction = map[string][]string{
	"restaurant": {
		"bewertigo.at/googlebewertungen",
		"bewertigo.at/website",
		"bewertigo.at/digitalmenu",
		"bewertigo.at/ki-telefonassistent",
	},
	"barber_shop": {
		"bewertigo.at/googlebewertungen",
		"bewertigo.at/website",
		"bewertigo.at/ki-telefonassistent",
	},
	"hair_care": {
		"bewertigo.at/googlebewertungen",
		"bewertigo.at/website",
		"bewertigo.at/ki-telefonassistent",
	},
	"beauty_salon": {
		"bewertigo.at/googlebewertungen",
		"bewertigo.at/website",
		"bewertigo.at/ki-telefonassistent",
	},
	"personal_brand": {
		"bewertigo.at/visitenkarte",
		"bewertigo.at/instagram-promotion",
	},
	"default": {
		"bewertigo.at/googlebewertungen",
		"bewertigo.at/website",
	},
}

// CallsToAction returns the recommended service links for a category.
func CallsToAction(category string) []string {
	links, ok := callsToAction[NormalizeCategory(category)]
	if !ok {
		links = callsToAction["default"]
	}
	return append([]string(nil), links...)
}
