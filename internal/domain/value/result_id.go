package value

import (
	"fmt"

	"github.com/rs/xid"
)

type ResultID struct {
	id xid.ID
}

func NewResultID() ResultID {
	return ResultID{id: xid.New()}
}

func ParseResultID(s string) (ResultID, error) {
	id, err := xid.FromString(s)
	if err != nil {
		return ResultID{}, fmt.Errorf("xid.FromString: %w", err)
	}

	return ResultID{id: id}, nil
}

func (r ResultID) String() string {
	return r.id.String()
}

func (r ResultID) IsZero() bool {
	return r.id.IsNil()
}
