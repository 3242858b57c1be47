package communes

import (
	"strconv"

	"github.com/alpstat/swissdata/errors"
)

// CantonID is a canton number.
type CantonID = uint8

// DistrictHistID is the lineage key of a district: stable across renames
// and reassignments, where the numeric DistrictID is not.
type DistrictHistID = uint32

// DistrictID is a district number.
type DistrictID = uint16

// MunicipalityHistID is the lineage key of a municipality.
type MunicipalityHistID = uint32

// MunicipalityID is a municipality number.
type MunicipalityID = uint16

// MutationID identifies a mutation event (admission or abolition).
type MutationID = uint16

// MutationMode constrains the two disjoint reason-code enumerations.
type MutationMode interface {
	AdmissionMode | AbolitionMode
}

// Mutation is a view on an entity's admission or abolition fields. It is
// derived on demand, never stored.
type Mutation[M MutationMode] struct {
	Number MutationID
	Mode   M
	Date   Date
}

// Canton is a national-level entity. Cantons are not historicized in this
// dataset: there is no admission/abolition chain.
type Canton struct {
	ID           CantonID
	Abbreviation string
	Name         string
	DateOfChange Date
}

// District is one version of a district, bounded by its admission and an
// optional abolition. Multiple rows may share a HistID over time, one per
// version.
type District struct {
	HistID    DistrictHistID
	CantonID  CantonID
	ID        DistrictID
	Name      string
	ShortName string
	EntryMode DistrictMode

	AdmissionNumber MutationID
	AdmissionMode   AdmissionMode
	AdmissionDate   Date

	// The abolition triple is present as a whole or absent as a whole.
	AbolitionNumber *MutationID
	AbolitionMode   *AbolitionMode
	AbolitionDate   *Date

	DateOfChange Date
}

// Admission returns the mutation that opened this version.
func (d District) Admission() Mutation[AdmissionMode] {
	return Mutation[AdmissionMode]{
		Number: d.AdmissionNumber,
		Mode:   d.AdmissionMode,
		Date:   d.AdmissionDate,
	}
}

// Abolition returns the mutation that closed this version, if any.
func (d District) Abolition() (Mutation[AbolitionMode], bool) {
	if d.AbolitionNumber == nil {
		return Mutation[AbolitionMode]{}, false
	}
	return Mutation[AbolitionMode]{
		Number: *d.AbolitionNumber,
		Mode:   *d.AbolitionMode,
		Date:   *d.AbolitionDate,
	}, true
}

// Active reports whether this version is currently in force. The absence
// of an abolition is the sole test.
func (d District) Active() bool {
	return d.AbolitionNumber == nil
}

// Municipality is one version of a municipality. DistrictHistID is a
// foreign reference to the owning district's lineage key, not ownership.
type Municipality struct {
	HistID             MunicipalityHistID
	DistrictHistID     DistrictHistID
	CantonAbbreviation string
	ID                 MunicipalityID
	Name               string
	ShortName          string
	EntryMode          MunicipalityMode
	Status             Status

	AdmissionNumber MutationID
	AdmissionMode   AdmissionMode
	AdmissionDate   Date

	AbolitionNumber *MutationID
	AbolitionMode   *AbolitionMode
	AbolitionDate   *Date

	DateOfChange Date
}

// Admission returns the mutation that opened this version.
func (m Municipality) Admission() Mutation[AdmissionMode] {
	return Mutation[AdmissionMode]{
		Number: m.AdmissionNumber,
		Mode:   m.AdmissionMode,
		Date:   m.AdmissionDate,
	}
}

// Abolition returns the mutation that closed this version, if any.
func (m Municipality) Abolition() (Mutation[AbolitionMode], bool) {
	if m.AbolitionNumber == nil {
		return Mutation[AbolitionMode]{}, false
	}
	return Mutation[AbolitionMode]{
		Number: *m.AbolitionNumber,
		Mode:   *m.AbolitionMode,
		Date:   *m.AbolitionDate,
	}, true
}

// Active reports whether this version is currently in force.
func (m Municipality) Active() bool {
	return m.AbolitionNumber == nil
}

// Field counts are part of the wire contract; a row with any other count
// fails decoding.
const (
	cantonFieldCount       = 4
	districtFieldCount     = 13
	municipalityFieldCount = 15
)

func decodeCanton(fields []string) (Canton, error) {
	if len(fields) != cantonFieldCount {
		return Canton{}, errors.Newf("canton row has %d fields, want %d", len(fields), cantonFieldCount)
	}

	id, err := parseUint8(fields[0], "canton id")
	if err != nil {
		return Canton{}, err
	}
	changed, err := ParseDate(fields[3])
	if err != nil {
		return Canton{}, errors.Wrap(err, "date of change")
	}

	return Canton{
		ID:           id,
		Abbreviation: fields[1],
		Name:         fields[2],
		DateOfChange: changed,
	}, nil
}

func decodeDistrict(fields []string) (District, error) {
	if len(fields) != districtFieldCount {
		return District{}, errors.Newf("district row has %d fields, want %d", len(fields), districtFieldCount)
	}

	histID, err := parseUint32(fields[0], "district hist id")
	if err != nil {
		return District{}, err
	}
	cantonID, err := parseUint8(fields[1], "canton id")
	if err != nil {
		return District{}, err
	}
	id, err := parseUint16(fields[2], "district id")
	if err != nil {
		return District{}, err
	}
	entryMode, err := parseDistrictMode(fields[5])
	if err != nil {
		return District{}, err
	}
	admNumber, admMode, admDate, err := decodeAdmission(fields[6], fields[7], fields[8])
	if err != nil {
		return District{}, err
	}
	abNumber, abMode, abDate, err := decodeAbolition(fields[9], fields[10], fields[11])
	if err != nil {
		return District{}, err
	}
	changed, err := ParseDate(fields[12])
	if err != nil {
		return District{}, errors.Wrap(err, "date of change")
	}

	return District{
		HistID:          histID,
		CantonID:        cantonID,
		ID:              id,
		Name:            fields[3],
		ShortName:       fields[4],
		EntryMode:       entryMode,
		AdmissionNumber: admNumber,
		AdmissionMode:   admMode,
		AdmissionDate:   admDate,
		AbolitionNumber: abNumber,
		AbolitionMode:   abMode,
		AbolitionDate:   abDate,
		DateOfChange:    changed,
	}, nil
}

func decodeMunicipality(fields []string) (Municipality, error) {
	if len(fields) != municipalityFieldCount {
		return Municipality{}, errors.Newf("municipality row has %d fields, want %d", len(fields), municipalityFieldCount)
	}

	histID, err := parseUint32(fields[0], "municipality hist id")
	if err != nil {
		return Municipality{}, err
	}
	districtHistID, err := parseUint32(fields[1], "district hist id")
	if err != nil {
		return Municipality{}, err
	}
	id, err := parseUint16(fields[3], "municipality id")
	if err != nil {
		return Municipality{}, err
	}
	entryMode, err := parseMunicipalityMode(fields[6])
	if err != nil {
		return Municipality{}, err
	}
	status, err := parseStatus(fields[7])
	if err != nil {
		return Municipality{}, err
	}
	admNumber, admMode, admDate, err := decodeAdmission(fields[8], fields[9], fields[10])
	if err != nil {
		return Municipality{}, err
	}
	abNumber, abMode, abDate, err := decodeAbolition(fields[11], fields[12], fields[13])
	if err != nil {
		return Municipality{}, err
	}
	changed, err := ParseDate(fields[14])
	if err != nil {
		return Municipality{}, errors.Wrap(err, "date of change")
	}

	return Municipality{
		HistID:             histID,
		DistrictHistID:     districtHistID,
		CantonAbbreviation: fields[2],
		ID:                 id,
		Name:               fields[4],
		ShortName:          fields[5],
		EntryMode:          entryMode,
		Status:             status,
		AdmissionNumber:    admNumber,
		AdmissionMode:      admMode,
		AdmissionDate:      admDate,
		AbolitionNumber:    abNumber,
		AbolitionMode:      abMode,
		AbolitionDate:      abDate,
		DateOfChange:       changed,
	}, nil
}

// decodeAdmission parses the mandatory admission triple.
func decodeAdmission(number, mode, date string) (MutationID, AdmissionMode, Date, error) {
	n, err := parseUint16(number, "admission number")
	if err != nil {
		return 0, 0, Date{}, err
	}
	m, err := parseAdmissionMode(mode)
	if err != nil {
		return 0, 0, Date{}, err
	}
	d, err := ParseDate(date)
	if err != nil {
		return 0, 0, Date{}, errors.Wrap(err, "admission date")
	}
	return n, m, d, nil
}

// decodeAbolition parses the optional abolition triple. The three fields
// move as a unit: either all empty or all set, anything in between is a
// malformed row.
func decodeAbolition(number, mode, date string) (*MutationID, *AbolitionMode, *Date, error) {
	if number == "" && mode == "" && date == "" {
		return nil, nil, nil, nil
	}
	if number == "" || mode == "" || date == "" {
		return nil, nil, nil, errors.New("abolition fields must be all present or all absent")
	}

	n, err := parseUint16(number, "abolition number")
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := parseAbolitionMode(mode)
	if err != nil {
		return nil, nil, nil, err
	}
	d, err := ParseDate(date)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "abolition date")
	}
	return &n, &m, &d, nil
}

func parseUint8(s, what string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s %q", what, s)
	}
	return uint8(v), nil
}

func parseUint16(s, what string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s %q", what, s)
	}
	return uint16(v), nil
}

func parseUint32(s, what string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s %q", what, s)
	}
	return uint32(v), nil
}
