// Package bb84 simulates BB84 quantum key distribution over a noiseless,
// eavesdropper-free link: qubit preparation, transmission, measurement, and
// basis sifting, with every random draw taken from an injectable source.
package bb84

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"

	"github.com/NavMohan-24/Quantum-Key-Distribution/bb84/qubit"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrInvalidArgument is returned when a protocol or sifting argument is
// malformed, e.g. a negative qubit count or basis strings of unequal length.
var ErrInvalidArgument = errors.New("bb84: invalid argument")

// An Opts packages together the arguments necessary to construct a Protocol.
type Opts struct {
	// Qubits specifies the number of qubits to exchange per call to Run. May
	// be zero, in which case runs produce empty transcripts.
	Qubits int

	// Rand provides the randomness for bit draws, basis draws, and
	// measurement outcomes. A fixed-seed source makes runs reproducible. If
	// nil, a source seeded from the operating system is used.
	Rand *rand.Rand

	// Logger receives progress events at debug level. The zero value
	// discards everything.
	Logger zerolog.Logger
}

// A Protocol is a single simulated BB84 link between Alice and Bob. It is
// not safe for concurrent use; parallel experiments should construct one
// Protocol per goroutine.
type Protocol struct {
	qubits  int
	alice   *alice
	bob     *bob
	channel *qubit.Channel
	log     zerolog.Logger
}

// New returns a Protocol configured in accordance with opts, or an error if
// the options are nonsensical.
func New(opts Opts) (*Protocol, error) {
	if opts.Qubits < 0 {
		return nil, fmt.Errorf("%w: qubit count %d is negative", ErrInvalidArgument, opts.Qubits)
	}
	rng := opts.Rand
	if rng == nil {
		var err error
		if rng, err = entropyRand(); err != nil {
			return nil, err
		}
	}
	log := opts.Logger.With().
		Str("component", "bb84").
		Str("session", uuid.NewString()).
		Logger()
	return &Protocol{
		qubits:  opts.Qubits,
		alice:   &alice{rand: rng},
		bob:     &bob{rand: rng},
		channel: qubit.NewChannel(1),
		log:     log,
	}, nil
}

// Run executes one round of the protocol and returns its transcript: Alice
// draws her bits and bases and encodes them into a register, the register
// crosses the quantum channel, and Bob measures each qubit in his own drawn
// basis. Draws happen in a fixed order (Alice's bits, Alice's bases, Bob's
// bases, then one measurement draw per qubit by ascending index), so a
// seeded Rand fixes the whole transcript. Any component failure aborts the
// run with no partial transcript.
func (p *Protocol) Run() (Transcript, error) {
	reg, bits, bases, err := p.alice.prepare(p.qubits)
	if err != nil {
		return Transcript{}, fmt.Errorf("preparing qubits: %w", err)
	}
	if err := p.channel.Send(reg); err != nil {
		return Transcript{}, fmt.Errorf("transmitting register: %w", err)
	}
	received, err := p.channel.Receive()
	if err != nil {
		return Transcript{}, fmt.Errorf("receiving register: %w", err)
	}
	bobBases, measured, err := p.bob.measure(received)
	if err != nil {
		return Transcript{}, fmt.Errorf("measuring qubits: %w", err)
	}
	t := Transcript{
		AliceBits:  bits,
		AliceBases: bases,
		BobBases:   bobBases,
		BobBits:    measured,
	}
	stats, err := t.Stats()
	if err != nil {
		return Transcript{}, err
	}
	p.log.Debug().
		Int("qubits", stats.Qubits).
		Int("matched", stats.Matched).
		Float64("match_rate", stats.MatchRate).
		Msg("exchange complete")
	return t, nil
}

// Run executes a single BB84 exchange of n qubits using rng, which may be
// nil, on a throwaway Protocol.
func Run(n int, rng *rand.Rand) (Transcript, error) {
	p, err := New(Opts{Qubits: n, Rand: rng})
	if err != nil {
		return Transcript{}, err
	}
	return p.Run()
}

func entropyRand() (*rand.Rand, error) {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seeding from OS entropy: %w", err)
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:])))), nil
}
