package importer

import "fmt"

// CodeProber consulta si un código de producto ya está ocupado.
// repository.ProductRepository lo satisface.
type CodeProber interface {
	ExistsByCode(code string) (bool, error)
}

// CodeAllocator resuelve colisiones de códigos propuestos: si el código
// está libre lo devuelve tal cual; si no, prueba code(1), code(2), …
// hasta encontrar uno libre. El bucle está acotado por el número de
// colisiones existentes, no por tiempo.
type CodeAllocator struct {
	prober CodeProber
}

// NewCodeAllocator construye el asignador.
func NewCodeAllocator(prober CodeProber) *CodeAllocator {
	return &CodeAllocator{prober: prober}
}

// Allocate devuelve un código libre derivado del propuesto. La sonda no
// reserva: bajo concurrencia, el constraint único de la tabla es la
// garantía final y el caller reintenta si el insert choca.
func (a *CodeAllocator) Allocate(proposed string) (string, error) {
	code := proposed
	for n := 1; ; n++ {
		exists, err := a.prober.ExistsByCode(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		code = fmt.Sprintf("%s(%d)", proposed, n)
	}
}
