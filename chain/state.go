package chain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/zkcross/launchpad"
)

// QueryState fetches the global counters and, when the key owns a
// registered participant, its balance and nonce.
//
// The /query endpoint answers with the rollup state serialized twice: the
// envelope's data field holds a JSON *string* that itself contains the
// state document. Unquote first, then pick the fields by path.
func (c *Client) QueryState(ctx context.Context, key string) (launchpad.State, error) {
	env, err := c.post(ctx, "/query", map[string]string{"key": key})
	if err != nil {
		return launchpad.State{}, err
	}
	if !env.Success {
		if env.Message != "" {
			return launchpad.State{}, fmt.Errorf("/query: %s", env.Message)
		}
		return launchpad.State{}, fmt.Errorf("/query: server reported failure")
	}

	var inner string
	if err := json.Unmarshal(env.Data, &inner); err != nil {
		return launchpad.State{}, fmt.Errorf("malformed state payload: %w", err)
	}
	var doc any
	if err := json.Unmarshal([]byte(inner), &doc); err != nil {
		return launchpad.State{}, fmt.Errorf("malformed state document: %w", err)
	}

	var st launchpad.State

	if v, err := jsonpath.Get("$.state.counter", doc); err == nil {
		st.Counter = launchpad.Tick(asInt64(v))
	}
	if v, err := jsonpath.Get("$.state.total_players", doc); err == nil {
		st.TotalParticipants = asInt64(v)
	}
	if v, err := jsonpath.Get("$.state.total_projects", doc); err == nil {
		st.TotalOfferings = asInt64(v)
	}

	// Participant data is absent for keys that never installed.
	if v, err := jsonpath.Get("$.player.data.balance", doc); err == nil {
		st.Balance, err = launchpad.ParseAmount(asString(v))
		if err != nil {
			return launchpad.State{}, fmt.Errorf("invalid balance in state: %w", err)
		}
		st.Registered = true
	}
	if v, err := jsonpath.Get("$.player.nonce", doc); err == nil {
		st.Nonce = uint64(asInt64(v))
	}

	return st, nil
}

// asInt64 coerces the loosely typed numbers the state document carries.
func asInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case string:
		var out int64
		fmt.Sscanf(n, "%d", &out)
		return out
	default:
		return 0
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return fmt.Sprintf("%.0f", s)
	default:
		return fmt.Sprint(v)
	}
}
