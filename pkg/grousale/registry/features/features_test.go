package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/mikepea/grousale/pkg/grousale/models"
	"github.com/mikepea/grousale/pkg/grousale/registry"
	"github.com/mikepea/grousale/pkg/grousale/storage/memory"
)

type lifecycleTestContext struct {
	now      time.Time
	store    *memory.Store
	registry *registry.Registry
	groupID  string
	status   models.Status
	members  []string
	joinRes  *registry.JoinResult
	discount int
	err      error
}

func (c *lifecycleTestContext) reset() {
	c.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.store = memory.New()
	c.registry = registry.New(c.store, registry.WithClock(func() time.Time { return c.now }))
	c.groupID = ""
	c.status = ""
	c.members = nil
	c.joinRes = nil
	c.discount = 0
	c.err = nil
}

func (c *lifecycleTestContext) anEmptyRegistry() error {
	return nil
}

func (c *lifecycleTestContext) aGroupWith(size, discount, duration int) error {
	if err := c.createGroup(size, discount, duration); err != nil {
		return err
	}
	return c.err
}

func (c *lifecycleTestContext) createGroup(size, discount, duration int) error {
	group, err := c.registry.Create(context.Background(), registry.CreateParams{
		ProductID:          "prod-1",
		VariantID:          "var-1",
		GroupSize:          size,
		DiscountPercentage: discount,
		GroupDuration:      duration,
	})
	c.err = err
	if err == nil {
		c.groupID = group.ID
		c.status = group.Status
		c.members = group.Members
	}
	return nil
}

func (c *lifecycleTestContext) userJoinsTheGroup(userID string) error {
	return c.userJoinsGroup(userID, c.groupID)
}

func (c *lifecycleTestContext) userJoinsGroup(userID, groupID string) error {
	res, err := c.registry.Join(context.Background(), groupID, userID)
	c.joinRes, c.err = res, err
	if err == nil {
		c.status = res.Status
		c.members = res.Members
	}
	return nil
}

func (c *lifecycleTestContext) hoursPass(hours int) error {
	c.now = c.now.Add(time.Duration(hours) * time.Hour)
	return nil
}

func (c *lifecycleTestContext) theGroupIsRead() error {
	group, err := c.registry.Get(context.Background(), c.groupID)
	c.err = err
	if err == nil {
		c.status = group.Status
		c.members = group.Members
	}
	return nil
}

func (c *lifecycleTestContext) theDiscountIsApplied() error {
	group, err := c.registry.ApplyDiscount(context.Background(), c.groupID)
	c.err = err
	if err == nil {
		c.discount = group.DiscountPercentage
	}
	return nil
}

func (c *lifecycleTestContext) theGroupStatusIs(status string) error {
	if c.err != nil {
		return fmt.Errorf("expected status %s but got error: %v", status, c.err)
	}
	if string(c.status) != status {
		return fmt.Errorf("expected status %s, got %s", status, c.status)
	}
	return nil
}

func (c *lifecycleTestContext) theStoredStatusIs(status string) error {
	group, err := c.store.GetGroup(context.Background(), c.groupID)
	if err != nil {
		return err
	}
	if string(group.Status) != status {
		return fmt.Errorf("expected stored status %s, got %s", status, group.Status)
	}
	return nil
}

func (c *lifecycleTestContext) theMembersAre(csv string) error {
	want := strings.Split(csv, ",")
	if strings.Join(c.members, ",") != strings.Join(want, ",") {
		return fmt.Errorf("expected members %v, got %v", want, c.members)
	}
	return nil
}

func (c *lifecycleTestContext) theJoinIsReportedAsAlreadyJoined() error {
	if c.err != nil {
		return fmt.Errorf("expected idempotent join but got error: %v", c.err)
	}
	if !c.joinRes.AlreadyJoined {
		return errors.New("expected join to be reported as already joined")
	}
	return nil
}

func (c *lifecycleTestContext) theAppliedDiscountIs(discount int) error {
	if c.err != nil {
		return fmt.Errorf("expected discount but got error: %v", c.err)
	}
	if c.discount != discount {
		return fmt.Errorf("expected discount %d, got %d", discount, c.discount)
	}
	return nil
}

func (c *lifecycleTestContext) theOperationFailsWith(kind string) error {
	targets := map[string]error{
		"validation":   registry.ErrValidation,
		"not found":    registry.ErrNotFound,
		"expired":      registry.ErrExpired,
		"already full": registry.ErrAlreadyFull,
		"not full":     registry.ErrNotFull,
	}
	target, ok := targets[kind]
	if !ok {
		return fmt.Errorf("unknown error kind %q", kind)
	}
	if !errors.Is(c.err, target) {
		return fmt.Errorf("expected %q error, got %v", kind, c.err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &lifecycleTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty registry$`, tc.anEmptyRegistry)
	ctx.Step(`^a group with size (\d+), discount (\d+) and duration (\d+) hours$`, tc.aGroupWith)

	// When steps
	ctx.Step(`^a group is created with size (-?\d+), discount (-?\d+) and duration (-?\d+) hours$`, tc.createGroup)
	ctx.Step(`^user "([^"]*)" joins the group$`, tc.userJoinsTheGroup)
	ctx.Step(`^user "([^"]*)" joins group "([^"]*)"$`, tc.userJoinsGroup)
	ctx.Step(`^(\d+) hours pass$`, tc.hoursPass)
	ctx.Step(`^the group is read$`, tc.theGroupIsRead)
	ctx.Step(`^the discount is applied$`, tc.theDiscountIsApplied)

	// Then steps
	ctx.Step(`^the group status is "([^"]*)"$`, tc.theGroupStatusIs)
	ctx.Step(`^the stored status is "([^"]*)"$`, tc.theStoredStatusIs)
	ctx.Step(`^the members are "([^"]*)"$`, tc.theMembersAre)
	ctx.Step(`^the join is reported as already joined$`, tc.theJoinIsReportedAsAlreadyJoined)
	ctx.Step(`^the applied discount is (\d+)$`, tc.theAppliedDiscountIs)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"group_lifecycle.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
