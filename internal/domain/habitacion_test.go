package domain

import "testing"

func TestIncrementoCupo(t *testing.T) {
	dos := 2
	cero := 0

	tests := []struct {
		nombre   string
		cantidad *int
		esperado int
	}{
		{"sin cantidad no hay incremento", nil, 0},
		{"cantidad explícita", &dos, 2},
		{"cantidad cero explícita", &cero, 0},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			if got := IncrementoCupo(tt.cantidad); got != tt.esperado {
				t.Errorf("IncrementoCupo(%v) = %d, se esperaba %d", tt.cantidad, got, tt.esperado)
			}
		})
	}
}
