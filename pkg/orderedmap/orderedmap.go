// Package orderedmap provee un mapa string -> decimal que preserva el orden
// de inserción de las claves. Los desgloses por categoría y los rankings de
// los reportes dependen de ese orden: el desempate de montos iguales es
// "primero visto, primero listado", y el map nativo de Go no lo garantiza.
package orderedmap

import "github.com/shopspring/decimal"

// Map acumulador de montos por etiqueta con orden de inserción estable.
// El valor cero no es usable; crear siempre con New.
type Map struct {
	claves  []string
	valores map[string]decimal.Decimal
}

// New crea un mapa vacío.
func New() *Map {
	return &Map{valores: make(map[string]decimal.Decimal)}
}

// Sumar acumula monto bajo la clave. La primera inserción fija la posición de la clave.
func (m *Map) Sumar(clave string, monto decimal.Decimal) {
	if _, ok := m.valores[clave]; !ok {
		m.claves = append(m.claves, clave)
	}
	m.valores[clave] = m.valores[clave].Add(monto)
}

// Len cantidad de claves.
func (m *Map) Len() int {
	return len(m.claves)
}

// Recorrer invoca fn por cada par clave/valor en orden de inserción.
func (m *Map) Recorrer(fn func(clave string, valor decimal.Decimal)) {
	for _, k := range m.claves {
		fn(k, m.valores[k])
	}
}

// Entrada par clave/valor materializado.
type Entrada struct {
	Clave string
	Valor decimal.Decimal
}

// Entradas materializa los pares en orden de inserción.
func (m *Map) Entradas() []Entrada {
	out := make([]Entrada, 0, len(m.claves))
	for _, k := range m.claves {
		out = append(out, Entrada{Clave: k, Valor: m.valores[k]})
	}
	return out
}
