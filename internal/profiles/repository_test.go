package profiles

import (
	"strings"
	"testing"

	"github.com/tennisconnect/server/internal/models"
)

func TestListWhereBasePredicate(t *testing.T) {
	where, args := listWhere(ListFilter{})

	if !strings.Contains(where, "p.looking_for_partner = TRUE") {
		t.Errorf("where = %q, want partner-seeking predicate", where)
	}
	if len(args) != 0 {
		t.Fatalf("args = %v, want none", args)
	}
}

func TestListWhereCityIsSubstringInsensitive(t *testing.T) {
	where, args := listWhere(ListFilter{City: "Amste"})

	if !strings.Contains(where, "p.city ILIKE $1") {
		t.Errorf("where = %q, want ILIKE city predicate", where)
	}
	if args[0] != "%Amste%" {
		t.Errorf("city arg = %v, want wrapped in wildcards", args[0])
	}
}

func TestListWhereSkillLevel(t *testing.T) {
	tests := []struct {
		name   string
		skill  models.SkillLevel
		filter bool
	}{
		{name: "empty means no filter", skill: "", filter: false},
		{name: "all means no filter", skill: models.SkillLevelAll, filter: false},
		{name: "concrete level filters", skill: models.SkillLevelBeginner, filter: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			where, _ := listWhere(ListFilter{SkillLevel: tc.skill})
			if got := strings.Contains(where, "p.skill_level ="); got != tc.filter {
				t.Errorf("skill predicate present = %v, want %v (where %q)", got, tc.filter, where)
			}
		})
	}
}
