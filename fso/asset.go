// Package fso accesses datasets published by the Swiss Federal Statistical
// Office (FSO / BFS / OFS / UST) through its DAM asset API.
package fso

import (
	"context"
	"fmt"
	"io"

	"github.com/alpstat/swissdata/errors"
	"github.com/alpstat/swissdata/fetch"
)

// AssetID identifies an FSO asset.
type AssetID uint32

// AccessMode selects which rendition of an asset a URL addresses.
type AccessMode int

const (
	// AccessData is the raw data file.
	AccessData AccessMode = iota
	// AccessBibTeX is the BibTeX bibliography entry for the asset.
	AccessBibTeX
	// AccessRIS is the RIS bibliography entry for the asset.
	AccessRIS
)

// Asset is an FSO datasource, addressable for download or citation.
type Asset struct {
	ID AssetID
}

// URL renders the resource URL for the given access mode.
func (a Asset) URL(mode AccessMode) string {
	suffix := "master"
	switch mode {
	case AccessBibTeX:
		suffix = "bibtex"
	case AccessRIS:
		suffix = "ris"
	}
	return fmt.Sprintf("https://dam-api.bfs.admin.ch/hub/api/dam/assets/%d/%s", a.ID, suffix)
}

// DataURL is the download URL of the asset's data file.
func (a Asset) DataURL() string { return a.URL(AccessData) }

// BibTeXURL is the URL of the asset's BibTeX citation entry. Citing the
// source can be mandatory under the terms of use.
func (a Asset) BibTeXURL() string { return a.URL(AccessBibTeX) }

// RISURL is the URL of the asset's RIS citation entry.
func (a Asset) RISURL() string { return a.URL(AccessRIS) }

// DataFile downloads the asset's data file through the downloader's cache
// and returns the local path.
func (a Asset) DataFile(ctx context.Context, d fetch.Downloader) (string, error) {
	return d.CacheGet(ctx, a.DataURL())
}

// BibTeX fetches the BibTeX citation entry for the asset.
func (a Asset) BibTeX(ctx context.Context, d fetch.Downloader) (string, error) {
	return a.fetchText(ctx, d, a.BibTeXURL())
}

// RIS fetches the RIS citation entry for the asset.
func (a Asset) RIS(ctx context.Context, d fetch.Downloader) (string, error) {
	return a.fetchText(ctx, d, a.RISURL())
}

func (a Asset) fetchText(ctx context.Context, d fetch.Downloader, rawurl string) (string, error) {
	body, err := d.Get(ctx, rawurl)
	if err != nil {
		return "", err
	}
	defer body.Close()

	text, err := io.ReadAll(body)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", rawurl)
	}
	return string(text), nil
}
