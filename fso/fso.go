package fso

import (
	"github.com/alpstat/swissdata/meta"
)

func link(lang, content, url string) meta.Entry[meta.Link[string]] {
	return meta.Entry[meta.Link[string]]{
		Lang:    lang,
		Content: meta.Link[string]{Content: content, URL: url},
	}
}

// Editor returns the publishing body in every language the FSO publishes
// under.
func Editor() meta.LinkedMessage {
	return meta.NewTranslated(
		link("en", "Federal Statistical Office",
			"https://www.bfs.admin.ch/bfs/en/home.html"),
		link("de", "Bundesamt für Statistik",
			"https://www.bfs.admin.ch/bfs/de/home.html"),
		link("fr", "Office fédéral de la statistique",
			"https://www.bfs.admin.ch/bfs/fr/home.html"),
		link("it", "Ufficio federale di statistica",
			"https://www.bfs.admin.ch/bfs/it/home.html"),
		link("rm", "Uffizi federal da statistica",
			"https://www.bfs.admin.ch/bfs/rm/home.html"),
	)
}

// Copyright returns the FSO legal framework reference.
func Copyright() meta.LinkedMessage {
	return meta.NewTranslated(
		link("en", "Federal Statistical Office - Legal framework",
			"https://www.bfs.admin.ch/bfs/en/home/fso/swiss-federal-statistical-office/legal-framework.html"),
		link("de", "Bundesamt für Statistik - Rechtliche Hinweise",
			"https://www.bfs.admin.ch/bfs/de/home/bfs/bundesamt-statistik/rechtliche-hinweise.html"),
		link("fr", "Office fédéral de la statistique - Informations juridiques",
			"https://www.bfs.admin.ch/bfs/fr/home/ofs/office-federal-statistique/informations-juridiques.html"),
		link("it", "Ufficio federale di statistica - Basi legali",
			"https://www.bfs.admin.ch/bfs/it/home/ust/ufficio-federale-statistica/basi-legali.html"),
	)
}

// TermsOfUse returns the FSO terms-of-use reference, titled with the
// license label of the dataset at hand (for example "OPEN-BY-ASK").
func TermsOfUse(title string) meta.LinkedMessage {
	return meta.NewTranslated(
		link("en", title,
			"https://www.bfs.admin.ch/bfs/en/home/fso/swiss-federal-statistical-office/terms-of-use.html"),
		link("de", title,
			"https://www.bfs.admin.ch/bfs/de/home/bfs/bundesamt-statistik/nutzungsbedingungen.html"),
		link("fr", title,
			"https://www.bfs.admin.ch/bfs/fr/home/ofs/office-federal-statistique/conditions-utilisation.html"),
		link("it", title,
			"https://www.bfs.admin.ch/bfs/it/home/ust/ufficio-federale-statistica/condizioni-uso.html"),
	)
}
