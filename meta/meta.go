package meta

// LinkedMessage is a translated message where every translation carries a
// reference URL.
type LinkedMessage = Translated[Link[string]]

// Meta carries the descriptive metadata of a dataset: who publishes it,
// under which terms, and how to cite it.
type Meta struct {
	// Lang lists the languages the data itself is available in.
	// Nil means the data is language independent.
	Lang []string

	// Editor is the publishing body.
	Editor LinkedMessage

	// Copyright points at the publisher's legal framework.
	Copyright LinkedMessage

	// Terms points at the terms of use.
	Terms LinkedMessage

	// TermsAutomatic is a machine-readable summary of the terms. It is
	// maintained by hand; the linked Terms text is authoritative.
	TermsAutomatic Terms

	// Citations holds ready-made citation entries per language.
	Citations Translated[Citation]
}

// Terms is a machine-readable summary of a dataset's terms of use.
type Terms struct {
	FreeCommercialUse    bool
	FreeNoncommercialUse bool
	CitationMandatory    bool
}

// Citation holds formatted bibliography entries for one language.
type Citation struct {
	BibTeX string
	RIS    string
}
