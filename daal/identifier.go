// MODUL: identifier
// ZWECK: Registry der geschlossenen Identifier-Familien (Result-, Input-, Layer-Data-IDs)
// INPUT: Familienname und benannte Konstanten (aus init der Algorithmus-Pakete)
// OUTPUT: Family-Beschreibungen, Namen zu Codes
// NEBENEFFEKTE: Aendert den globalen Familienkatalog
// ABHAENGIGKEITEN: catalog.go
// HINWEISE: Eindeutigkeit der Codes wird beim Laden geprueft, nie zur Laufzeit

package daal

import (
	"fmt"
	"strconv"
	"strings"
)

// Identifier ist ein unveraenderliches (Name, Code)-Paar einer Familie.
// Jede Familie ist ein eigener int-Typ mit festen benannten Konstanten.
type Identifier interface {
	Value() int
	String() string
}

// Member ist eine benannte Konstante einer Familie.
type Member struct {
	Name string `json:"name"`
	Code int    `json:"code"`
}

// Family beschreibt eine registrierte Identifier-Familie.
type Family struct {
	Name    string   `json:"name"`
	Members []Member `json:"members"`

	byCode map[int]string
}

var families = newCatalog[*Family]("family")

// RegisterFamily registriert eine Familie unter name, z.B.
// "neuralnetworks/layers/softmaxcross.LayerDataID".
// Panic bei doppeltem Familiennamen, doppeltem Code oder doppeltem Konstantennamen.
func RegisterFamily(name string, members ...Member) *Family {
	f := &Family{
		Name:    name,
		Members: members,
		byCode:  make(map[int]string, len(members)),
	}

	names := make(map[string]struct{}, len(members))
	for _, m := range members {
		if other, ok := f.byCode[m.Code]; ok {
			panic(fmt.Sprintf("daal: family %s: %s and %s share code %d", name, other, m.Name, m.Code))
		}
		if _, ok := names[m.Name]; ok {
			panic(fmt.Sprintf("daal: family %s: duplicate member %s", name, m.Name))
		}
		f.byCode[m.Code] = m.Name
		names[m.Name] = struct{}{}
	}

	families.add(name, f)
	return f
}

// Families gibt alle Familien in Registrierungsreihenfolge zurueck.
func Families() []*Family {
	return families.list()
}

// LookupFamily sucht eine Familie ueber ihren vollen Namen.
func LookupFamily(name string) (*Family, error) {
	return families.get(name)
}

// Has prueft ob code eine benannte Konstante der Familie ist.
func (f *Family) Has(code int) bool {
	_, ok := f.byCode[code]
	return ok
}

// Check gibt ErrUnsupportedID zurueck wenn code nicht zur Familie gehoert.
func (f *Family) Check(code int) error {
	if f.Has(code) {
		return nil
	}
	return fmt.Errorf("%s %d: %w", f.ShortName(), code, ErrUnsupportedID)
}

// NameOf gibt den Konstantennamen fuer code zurueck, sonst "Typ(code)".
func (f *Family) NameOf(code int) string {
	if name, ok := f.byCode[code]; ok {
		return name
	}
	return f.ShortName() + "(" + strconv.Itoa(code) + ")"
}

// ShortName gibt den Namen ohne Paketpfad zurueck ("softmaxcross.LayerDataID").
func (f *Family) ShortName() string {
	if i := strings.LastIndex(f.Name, "/"); i >= 0 {
		return f.Name[i+1:]
	}
	return f.Name
}
