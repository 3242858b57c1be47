package communes

import (
	"strconv"

	"github.com/alpstat/swissdata/errors"
)

// The registry encodes classifications as fixed numeric codes. Every set
// below is closed: a code outside the set is a row decode failure, never
// silently coerced.

// Status distinguishes mutations that have passed every procedure at
// municipality, canton and national level (final) from those still in
// progress (tentative).
type Status uint8

const (
	StatusTentative Status = 0
	StatusFinal     Status = 1
)

func parseStatus(s string) (Status, error) {
	code, err := parseCode(s, "status")
	if err != nil {
		return 0, err
	}
	switch Status(code) {
	case StatusTentative, StatusFinal:
		return Status(code), nil
	}
	return 0, errors.Newf("unknown status code %q", s)
}

func (s Status) String() string {
	switch s {
	case StatusTentative:
		return "tentative"
	case StatusFinal:
		return "final"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// MunicipalityMode classifies what kind of entry a municipality record is.
type MunicipalityMode uint8

const (
	// PoliticalCommune / Politische Gemeinde / Commune politique
	PoliticalCommune MunicipalityMode = 11
	// MunicipalityFreeArea / Gemeindefreies Gebiet / Territoire non attribué à une commune
	MunicipalityFreeArea MunicipalityMode = 12
	// CantonalLakePortion / Kantonaler Seeanteil / Partie cantonale de lac
	CantonalLakePortion MunicipalityMode = 13
)

func parseMunicipalityMode(s string) (MunicipalityMode, error) {
	code, err := parseCode(s, "municipality entry mode")
	if err != nil {
		return 0, err
	}
	switch MunicipalityMode(code) {
	case PoliticalCommune, MunicipalityFreeArea, CantonalLakePortion:
		return MunicipalityMode(code), nil
	}
	return 0, errors.Newf("unknown municipality entry mode code %q", s)
}

func (m MunicipalityMode) String() string {
	switch m {
	case PoliticalCommune:
		return "political commune"
	case MunicipalityFreeArea:
		return "municipality-free area"
	case CantonalLakePortion:
		return "cantonal lake portion"
	}
	return "municipality mode(" + strconv.Itoa(int(m)) + ")"
}

// DistrictMode classifies what kind of entry a district record is.
type DistrictMode uint8

const (
	// OrdinaryDistrict / Bezirk / District
	OrdinaryDistrict DistrictMode = 15
	// CantonWithoutDistricts / Kanton ohne Bezirksunterteilung / Canton sans districts
	CantonWithoutDistricts DistrictMode = 16
	// DistrictFreeArea / Bezirksfreies Gebiet / Territoire non attribué à un district
	DistrictFreeArea DistrictMode = 17
)

func parseDistrictMode(s string) (DistrictMode, error) {
	code, err := parseCode(s, "district entry mode")
	if err != nil {
		return 0, err
	}
	switch DistrictMode(code) {
	case OrdinaryDistrict, CantonWithoutDistricts, DistrictFreeArea:
		return DistrictMode(code), nil
	}
	return 0, errors.Newf("unknown district entry mode code %q", s)
}

func (m DistrictMode) String() string {
	switch m {
	case OrdinaryDistrict:
		return "district"
	case CantonWithoutDistricts:
		return "canton without districts"
	case DistrictFreeArea:
		return "district-free area"
	}
	return "district mode(" + strconv.Itoa(int(m)) + ")"
}

// AdmissionMode is the reason code opening one version of an entity.
type AdmissionMode uint8

const (
	// FirstRegistration / Ersterfassung Gemeinde/Bezirk
	FirstRegistration AdmissionMode = 20
	// Creation / Neugründung Gemeinde/Bezirk
	Creation AdmissionMode = 21
	// AdmissionDistrictRename / Namensänderung Bezirk
	AdmissionDistrictRename AdmissionMode = 22
	// AdmissionMunicipalityRename / Namensänderung Gemeinde
	AdmissionMunicipalityRename AdmissionMode = 23
	// AdmissionReassignment / Neue Bezirks-/Kantonszuteilung
	AdmissionReassignment AdmissionMode = 24
	// AdmissionTerritoryChange / Gebietsänderung Gemeinde
	AdmissionTerritoryChange AdmissionMode = 26
	// AdmissionRenumbering / Formale Neunummerierung Gemeinde/Bezirk
	AdmissionRenumbering AdmissionMode = 27
)

func parseAdmissionMode(s string) (AdmissionMode, error) {
	code, err := parseCode(s, "admission mode")
	if err != nil {
		return 0, err
	}
	switch AdmissionMode(code) {
	case FirstRegistration, Creation, AdmissionDistrictRename,
		AdmissionMunicipalityRename, AdmissionReassignment,
		AdmissionTerritoryChange, AdmissionRenumbering:
		return AdmissionMode(code), nil
	}
	return 0, errors.Newf("unknown admission mode code %q", s)
}

func (m AdmissionMode) String() string {
	switch m {
	case FirstRegistration:
		return "first registration"
	case Creation:
		return "creation"
	case AdmissionDistrictRename:
		return "district rename"
	case AdmissionMunicipalityRename:
		return "municipality rename"
	case AdmissionReassignment:
		return "reassignment"
	case AdmissionTerritoryChange:
		return "territory change"
	case AdmissionRenumbering:
		return "formal renumbering"
	}
	return "admission mode(" + strconv.Itoa(int(m)) + ")"
}

// AbolitionMode is the reason code closing one version of an entity. Its
// numeric range overlaps AdmissionMode but the sets are distinct types.
type AbolitionMode uint8

const (
	// AbolitionDistrictRename / Namensänderung Bezirk
	AbolitionDistrictRename AbolitionMode = 22
	// AbolitionMunicipalityRename / Namensänderung Gemeinde
	AbolitionMunicipalityRename AbolitionMode = 23
	// AbolitionReassignment / Neue Bezirks-/Kantonszuteilung
	AbolitionReassignment AbolitionMode = 24
	// AbolitionTerritoryChange / Gebietsänderung Gemeinde
	AbolitionTerritoryChange AbolitionMode = 26
	// AbolitionRenumbering / Formale Neunummerierung Gemeinde/Bezirk
	AbolitionRenumbering AbolitionMode = 27
	// Radiation / Aufhebung Gemeinde/Bezirk
	Radiation AbolitionMode = 29
	// MutationAnnulled / Mutation annulliert
	MutationAnnulled AbolitionMode = 30
)

func parseAbolitionMode(s string) (AbolitionMode, error) {
	code, err := parseCode(s, "abolition mode")
	if err != nil {
		return 0, err
	}
	switch AbolitionMode(code) {
	case AbolitionDistrictRename, AbolitionMunicipalityRename,
		AbolitionReassignment, AbolitionTerritoryChange,
		AbolitionRenumbering, Radiation, MutationAnnulled:
		return AbolitionMode(code), nil
	}
	return 0, errors.Newf("unknown abolition mode code %q", s)
}

func (m AbolitionMode) String() string {
	switch m {
	case AbolitionDistrictRename:
		return "district rename"
	case AbolitionMunicipalityRename:
		return "municipality rename"
	case AbolitionReassignment:
		return "reassignment"
	case AbolitionTerritoryChange:
		return "territory change"
	case AbolitionRenumbering:
		return "formal renumbering"
	case Radiation:
		return "radiation"
	case MutationAnnulled:
		return "mutation annulled"
	}
	return "abolition mode(" + strconv.Itoa(int(m)) + ")"
}

// parseCode parses a numeric enumeration code in the 8-bit range.
func parseCode(s, kind string) (uint8, error) {
	code, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s code %q", kind, s)
	}
	return uint8(code), nil
}
