// Package communes exposes the FSO historicized registry of Swiss
// administrative divisions: cantons, districts and municipalities, each
// district and municipality row one version of an entity bounded by its
// admission and optional abolition mutation.
//
// Data source (FSO: dz-b-00.04-hgv-01): Historisiertes Gemeindeverzeichnis
// der Schweiz / Liste historisée des communes de la Suisse (TXT format),
// terms of use OPEN-BY-ASK. The registry follows the eCH-0071 norm.
package communes

import (
	"archive/zip"
	"context"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/alpstat/swissdata/errors"
	"github.com/alpstat/swissdata/fetch"
	"github.com/alpstat/swissdata/fso"
	"github.com/alpstat/swissdata/internal/tsv"
	"github.com/alpstat/swissdata/logger"
	"github.com/alpstat/swissdata/meta"
)

// FSO asset ids of the registry.
const (
	// TXTAssetID is the ZIP of tab-delimited text tables.
	TXTAssetID fso.AssetID = 23886071
	// XMLAssetID is the XML+XSD rendition (same content, not decoded here).
	XMLAssetID fso.AssetID = 23886070
)

// FSO dataset identifiers.
const (
	TXTFSOID = "dz-b-00.04-hgv-01"
	XMLFSOID = "dz-b-00.04-hgv-03"
)

// Entity-type codes embedded in archive member names.
const (
	codeCantons        = "KT"
	codeDistricts      = "BEZ"
	codeMunicipalities = "GDE"
)

// textEncoding is the legacy single-byte encoding of the text tables.
var textEncoding = charmap.ISO8859_3

// Asset returns the FSO asset for the TXT rendition.
func Asset() fso.Asset {
	return fso.Asset{ID: TXTAssetID}
}

// AssetXML returns the FSO asset for the XML rendition.
func AssetXML() fso.Asset {
	return fso.Asset{ID: XMLAssetID}
}

// Meta describes the registry dataset: publisher, legal references and
// usage terms.
func Meta() meta.Meta {
	return meta.Meta{
		Lang:      nil, // language independent
		Editor:    fso.Editor(),
		Copyright: fso.Copyright(),
		Terms:     fso.TermsOfUse("OPEN-BY-ASK"),
		TermsAutomatic: meta.Terms{
			FreeCommercialUse:    false,
			FreeNoncommercialUse: true,
			CitationMandatory:    true,
		},
	}
}

// Datasets holds one repeatable dataset per entity type.
type Datasets struct {
	// Cantons / Kantone / Cantons
	Cantons Dataset[Canton]
	// Districts / Bezirke / Districts
	Districts Dataset[District]
	// Municipalities / Gemeinden / Communes
	Municipalities Dataset[Municipality]
}

// Load downloads the registry archive through the downloader's cache and
// decodes its member tables. It fails before producing any record on
// transport, filesystem or archive-structure errors; row-level problems
// surface later, during iteration.
func Load(ctx context.Context, d fetch.Downloader) (*Datasets, error) {
	path, err := Asset().DataFile(ctx, d)
	if err != nil {
		return nil, err
	}
	return LoadArchive(path)
}

// LoadArchive decodes an already-downloaded registry archive.
func LoadArchive(path string) (*Datasets, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening registry archive %s", path)
	}
	defer archive.Close()

	members := memberIndex(&archive.Reader)
	logger.Logger.Debugw("resolved archive members", "path", path, "members", members)

	cantons, err := readMember(&archive.Reader, members, codeCantons)
	if err != nil {
		return nil, err
	}
	districts, err := readMember(&archive.Reader, members, codeDistricts)
	if err != nil {
		return nil, err
	}
	municipalities, err := readMember(&archive.Reader, members, codeMunicipalities)
	if err != nil {
		return nil, err
	}

	return &Datasets{
		Cantons:        newDataset(cantons, decodeCanton),
		Districts:      newDataset(districts, decodeDistrict),
		Municipalities: newDataset(municipalities, decodeMunicipality),
	}, nil
}

// memberIndex maps entity-type codes to member names. The naming
// convention is fixed for this dataset: members look like
//
//	{fso id}/1.2/{free text}_{CODE}.txt
//
// where the remainder after stripping prefix and extension splits on '_'
// and the segment at index 2 is the entity-type code. Members that do not
// follow the convention are ignored.
func memberIndex(archive *zip.Reader) map[string]string {
	members := make(map[string]string)
	for _, f := range archive.File {
		rest, ok := strings.CutPrefix(f.Name, TXTFSOID)
		if !ok {
			continue
		}
		rest, ok = strings.CutPrefix(rest, "/1.2/")
		if !ok {
			continue
		}
		rest, ok = strings.CutSuffix(rest, ".txt")
		if !ok {
			continue
		}
		segments := strings.Split(rest, "_")
		if len(segments) < 3 {
			continue
		}
		members[segments[2]] = f.Name
	}
	return members
}

// readMember locates the member for an entity-type code, transcodes it
// from the legacy encoding and returns the full UTF-8 payload.
func readMember(archive *zip.Reader, members map[string]string, code string) (string, error) {
	name, ok := members[code]
	if !ok {
		return "", errors.Newf("registry archive is missing the member for entity code %q", code)
	}

	member, err := archive.Open(name)
	if err != nil {
		return "", errors.Wrapf(err, "opening archive member %s", name)
	}
	defer member.Close()

	text, err := tsv.DecodeText(member, textEncoding)
	if err != nil {
		return "", errors.Wrapf(err, "reading archive member %s", name)
	}
	return text, nil
}
