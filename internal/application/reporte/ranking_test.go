package reporte_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/application/reporte"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Agrupador
// ──────────────────────────────────────────────────────────────────────────────

func TestAgrupador_AcumulaPorClave(t *testing.T) {
	a := reporte.NewAgrupador()
	a.Acumular("Café", d(2), d(5000), "")
	a.Acumular("Café", d(3), d(7500), "")
	a.Acumular("Pan", d(1), d(2000), "")

	grupos := a.Grupos()
	require.Len(t, grupos, 2)
	assert.Equal(t, "Café", grupos[0].Clave)
	assert.True(t, grupos[0].Cantidad.Equal(d(5)))
	assert.True(t, grupos[0].Total.Equal(d(12500)))
}

// El orden de los grupos es el de primera aparición, no alfabético ni por monto.
func TestAgrupador_PreservaOrdenDeAparicion(t *testing.T) {
	a := reporte.NewAgrupador()
	a.Acumular("Zeta", d(1), d(10), "")
	a.Acumular("Alfa", d(1), d(999), "")
	a.Acumular("Zeta", d(1), d(10), "")

	grupos := a.Grupos()
	require.Len(t, grupos, 2)
	assert.Equal(t, "Zeta", grupos[0].Clave)
	assert.Equal(t, "Alfa", grupos[1].Clave)
}

// Ante totales iguales el Top-N desempata por orden de primera aparición:
// el sort es estable sobre el orden de inserción.
func TestAgrupador_TopNDesempateEstable(t *testing.T) {
	a := reporte.NewAgrupador()
	a.Acumular("Primero", d(1), d(100), "")
	a.Acumular("Segundo", d(1), d(100), "")
	a.Acumular("Tercero", d(1), d(200), "")

	top := a.TopN(2)
	require.Len(t, top, 2)
	assert.Equal(t, "Tercero", top[0].Clave)
	assert.Equal(t, "Primero", top[1].Clave, "con totales iguales gana el primero visto")
}

func TestAgrupador_TopNRecortaAlLimite(t *testing.T) {
	a := reporte.NewAgrupador()
	for _, clave := range []string{"a", "b", "c", "d"} {
		a.Acumular(clave, d(1), d(1), "")
	}
	assert.Len(t, a.TopN(3), 3)
	assert.Len(t, a.TopN(10), 4, "con menos grupos que el límite devuelve todos")
}

// Los secundarios son un conjunto: repetir uno no lo duplica, y se listan en
// orden de aparición.
func TestAgrupador_SecundariosDistintos(t *testing.T) {
	a := reporte.NewAgrupador()
	a.Acumular("Café", d(1), d(100), "María")
	a.Acumular("Café", d(1), d(100), "Pedro")
	a.Acumular("Café", d(1), d(100), "María")
	a.Acumular("Café", d(1), d(100), "")

	grupos := a.Grupos()
	require.Len(t, grupos, 1)
	assert.Equal(t, []string{"María", "Pedro"}, grupos[0].Secundarios)
}
