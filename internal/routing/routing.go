package routing

import (
	"sync"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/brocaar/chirpstack-subnet/internal/config"
	"github.com/brocaar/chirpstack-subnet/internal/subnet"
	"github.com/brocaar/lorawan"
)

// ErrNotLocal is returned when a DevAddr does not resolve to a subnet
// address under the current NetID snapshot.
var ErrNotLocal = errors.New("devaddr does not map to a configured netid")

// ErrAddrOutOfRange is returned when a subnet address lies beyond the
// total address space of the current NetID snapshot.
var ErrAddrOutOfRange = errors.New("subnet address out of range")

// Snapshot is an immutable, versioned view of the ordered NetID list.
// Subnet addresses are only meaningful relative to the snapshot they
// were derived from: after an Update, previously derived addresses
// belong to a different address space.
type Snapshot struct {
	id     uuid.UUID
	netIDs []subnet.NetID
}

// ID returns the snapshot identifier.
func (s *Snapshot) ID() uuid.UUID {
	return s.id
}

// NetIDs returns a copy of the ordered NetID list.
func (s *Snapshot) NetIDs() []subnet.NetID {
	out := make([]subnet.NetID, len(s.netIDs))
	copy(out, s.netIDs)
	return out
}

// Size returns the total number of subnet addresses assigned by the
// snapshot.
func (s *Snapshot) Size() uint32 {
	var size uint32
	for _, n := range s.netIDs {
		size += n.Size()
	}
	return size
}

func (s *Snapshot) list() []subnet.NetID {
	if s == nil {
		return nil
	}
	return s.netIDs
}

var (
	mux     sync.RWMutex
	current *Snapshot
)

// Setup configures the routing package from the given configuration.
func Setup(conf config.Config) error {
	snap, err := newSnapshot(conf.Subnet.NetIDs)
	if err != nil {
		return errors.Wrap(err, "new snapshot error")
	}

	if len(snap.netIDs) == 0 {
		log.Warning("routing: no netids configured, all devaddrs resolve as foreign")
	}

	mux.Lock()
	current = snap
	mux.Unlock()

	log.WithFields(log.Fields{
		"snapshot_id": snap.id,
		"netid_count": len(snap.netIDs),
		"size":        snap.Size(),
	}).Info("routing: netid snapshot configured")

	return nil
}

// Update replaces the current snapshot with the given ordered NetID
// list.
func Update(netIDs []lorawan.NetID) error {
	snap, err := newSnapshot(netIDs)
	if err != nil {
		return errors.Wrap(err, "new snapshot error")
	}

	mux.Lock()
	current = snap
	mux.Unlock()

	log.WithFields(log.Fields{
		"snapshot_id": snap.id,
		"netid_count": len(snap.netIDs),
		"size":        snap.Size(),
	}).Info("routing: netid snapshot updated")

	return nil
}

// Current returns the current snapshot.
func Current() *Snapshot {
	mux.RLock()
	defer mux.RUnlock()
	return current
}

// IsLocalDevAddr returns true when the DevAddr belongs to the operator
// under the current snapshot. This includes DevAddrs under the retired
// NetID, which never resolve to a subnet address.
func IsLocalDevAddr(devAddr lorawan.DevAddr) bool {
	return subnet.DevAddrFromLoRaWAN(devAddr).IsLocal(Current().list())
}

// SubnetAddrForDevAddr maps a DevAddr to its subnet address under the
// current snapshot.
func SubnetAddrForDevAddr(devAddr lorawan.DevAddr) (subnet.Addr, error) {
	addr, ok := subnet.DevAddrFromLoRaWAN(devAddr).SubnetAddr(Current().list())
	if !ok {
		devAddrForeign().Inc()
		return 0, ErrNotLocal
	}

	devAddrLocal().Inc()
	return addr, nil
}

// DevAddrForSubnetAddr maps a subnet address back to a DevAddr under the
// current snapshot.
func DevAddrForSubnetAddr(addr subnet.Addr) (lorawan.DevAddr, error) {
	devAddr, ok := addr.DevAddr(Current().list())
	if !ok {
		subnetOutOfRange().Inc()
		return lorawan.DevAddr{}, ErrAddrOutOfRange
	}

	subnetResolved().Inc()
	return devAddr.LoRaWAN(), nil
}

func newSnapshot(netIDs []lorawan.NetID) (*Snapshot, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "new uuid error")
	}

	snap := Snapshot{
		id: id,
	}
	for _, n := range netIDs {
		snap.netIDs = append(snap.netIDs, subnet.NetIDFromLoRaWAN(n))
	}

	return &snap, nil
}
