package reporte

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Grupo acumulado de un ranking: cantidad (unidades u ocurrencias), total
// monetario y el conjunto de atributos secundarios distintos vistos, en orden
// de aparición.
type Grupo struct {
	Clave       string
	Cantidad    decimal.Decimal
	Total       decimal.Decimal
	Secundarios []string

	vistos map[string]struct{}
}

// Agrupador acumula totales por clave preservando el orden de primera
// aparición. Ese orden es el desempate del Top-N: ante totales iguales gana
// el primero visto, igual que en la vista de historial.
type Agrupador struct {
	orden  []string
	grupos map[string]*Grupo
}

// NewAgrupador crea un agrupador vacío.
func NewAgrupador() *Agrupador {
	return &Agrupador{grupos: make(map[string]*Grupo)}
}

// Acumular suma cantidad y monto bajo la clave. Si secundario no es vacío se
// agrega al conjunto de distintos del grupo.
func (a *Agrupador) Acumular(clave string, cantidad, monto decimal.Decimal, secundario string) {
	g, ok := a.grupos[clave]
	if !ok {
		g = &Grupo{
			Clave:    clave,
			Cantidad: decimal.Zero,
			Total:    decimal.Zero,
			vistos:   make(map[string]struct{}),
		}
		a.grupos[clave] = g
		a.orden = append(a.orden, clave)
	}
	g.Cantidad = g.Cantidad.Add(cantidad)
	g.Total = g.Total.Add(monto)
	if secundario != "" {
		if _, visto := g.vistos[secundario]; !visto {
			g.vistos[secundario] = struct{}{}
			g.Secundarios = append(g.Secundarios, secundario)
		}
	}
}

// Len cantidad de grupos acumulados.
func (a *Agrupador) Len() int {
	return len(a.orden)
}

// Grupos devuelve los grupos en orden de primera aparición.
func (a *Agrupador) Grupos() []*Grupo {
	out := make([]*Grupo, 0, len(a.orden))
	for _, k := range a.orden {
		out = append(out, a.grupos[k])
	}
	return out
}

// TopN devuelve hasta n grupos ordenados por Total descendente. El sort es
// estable sobre el orden de inserción, que es lo que hace observable el
// desempate primero-visto.
func (a *Agrupador) TopN(n int) []*Grupo {
	out := a.Grupos()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
