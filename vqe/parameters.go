// Package vqe defines the parameter groups for variational quantum
// eigensolver runs. Every type is a plain attribute bag serialized through
// the params block codec; construct the Default* instance first and decode
// on top of it so keys absent from the file keep their defaults.
package vqe

import "strings"

// OutputLevel is the verbosity of a run.
type OutputLevel int

const (
	Silent OutputLevel = iota
	Standard
	Debug
	All
)

func (l OutputLevel) String() string {
	switch l {
	case Silent:
		return "SILENT"
	case Standard:
		return "STANDARD"
	case Debug:
		return "DEBUG"
	case All:
		return "ALL"
	default:
		return "UNKNOWN"
	}
}

// Base holds the parameters every module needs. The verbosity is stored as
// a plain int so the codec coerces it like any other integer; use
// OutputLevel and SetOutputLevel for symbolic access.
type Base struct {
	Outfile   string `params:"outfile"`
	Verbosity int    `params:"verbosity"`
}

// OutputLevel returns the stored verbosity as its symbolic level.
func (b *Base) OutputLevel() OutputLevel {
	return OutputLevel(b.Verbosity)
}

// SetOutputLevel stores the symbolic level as its integer code.
func (b *Base) SetOutputLevel(l OutputLevel) {
	b.Verbosity = int(l)
}

// DefaultBase returns the base parameters at standard verbosity.
func DefaultBase() Base {
	return Base{Verbosity: int(Standard)}
}

// Hamiltonian holds the parameters shared by all Hamiltonian types.
type Hamiltonian struct {
	Base
	Transformation string `params:"transformation"`
}

// DefaultHamiltonian returns Hamiltonian parameters with the Jordan-Wigner
// transformation selected.
func DefaultHamiltonian() Hamiltonian {
	return Hamiltonian{Base: DefaultBase(), Transformation: "JW"}
}

// JordanWigner reports whether the Jordan-Wigner transformation is
// selected, accepting the usual aliases.
func (h *Hamiltonian) JordanWigner() bool {
	switch strings.ToUpper(h.Transformation) {
	case "JW", "J-W", "JORDAN-WIGNER":
		return true
	}
	return false
}

// BravyiKitaev reports whether the Bravyi-Kitaev transformation is
// selected, accepting the usual aliases.
func (h *Hamiltonian) BravyiKitaev() bool {
	switch strings.ToUpper(h.Transformation) {
	case "BK", "B-K", "BRAVYI-KITAEV":
		return true
	}
	return false
}

// Psi4 controls which classical reference computations the Psi4 backend
// runs and how it behaves.
type Psi4 struct {
	Base
	RunSCF        bool `params:"run_scf"`
	RunMP2        bool `params:"run_mp2"`
	RunCISD       bool `params:"run_cisd"`
	RunCCSD       bool `params:"run_ccsd"`
	RunFCI        bool `params:"run_fci"`
	Verbose       bool `params:"verbose"`
	TolerateError bool `params:"tolerate_error"`
	DeleteInput   bool `params:"delete_input"`
	DeleteOutput  bool `params:"delete_output"`
	Memory        int  `params:"memory"`
}

// DefaultPsi4 returns Psi4 parameters with only the SCF reference enabled
// and 8000 MB of memory.
func DefaultPsi4() Psi4 {
	return Psi4{Base: DefaultBase(), RunSCF: true, Memory: 8000}
}

// QC holds the quantum-chemistry parameters: the Hamiltonian settings plus
// the molecule and basis description. Psi4 is a nested parameter group
// serialized as its own block.
type QC struct {
	Hamiltonian
	Psi4 Psi4 `params:"psi4"`
	// BasisSet is the quantum chemistry basis set.
	BasisSet string `params:"basis_set"`
	// Geometry is the molecular geometry in Angstrom, either inline
	// ("h 0.0 0.0 0.0\nh 0.0 0.0 0.7") or the name of an .xyz file.
	Geometry     string `params:"geometry"`
	Filename     string `params:"filename"`
	Description  string `params:"description"`
	Multiplicity int    `params:"multiplicity"`
	Charge       int    `params:"charge"`
}

// DefaultQC returns the default quantum-chemistry parameters.
func DefaultQC() QC {
	return QC{
		Hamiltonian:  DefaultHamiltonian(),
		Psi4:         DefaultPsi4(),
		Multiplicity: 1,
	}
}

// Ansatz holds the parameters shared by all ansatz types.
type Ansatz struct {
	Base
	Backend string `params:"backend"`
}

// DefaultAnsatz returns ansatz parameters targeting the cirq backend.
func DefaultAnsatz() Ansatz {
	return Ansatz{Base: DefaultBase(), Backend: "cirq"}
}

// UCC holds the unitary coupled-cluster ansatz parameters.
type UCC struct {
	Ansatz
	Decomposition string `params:"decomposition"`
	TrotterSteps  int    `params:"trotter_steps"`
}

// DefaultUCC returns UCC parameters with a single Trotter step.
func DefaultUCC() UCC {
	return UCC{Ansatz: DefaultAnsatz(), Decomposition: "trotter", TrotterSteps: 1}
}
