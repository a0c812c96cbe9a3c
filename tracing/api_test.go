package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/qmclab/dcago/hooking"
)

type capturingTracer struct {
	started []Task
	stepped []Task
	ended   []Task
}

func (t *capturingTracer) StartTask(task Task) {
	t.started = append(t.started, task)
}

func (t *capturingTracer) StepTask(task Task) {
	t.stepped = append(t.stepped, task)
}

func (t *capturingTracer) EndTask(task Task) {
	t.ended = append(t.ended, task)
}

var _ = Describe("Task API", func() {
	var (
		mockCtrl *gomock.Controller
		domain   *MockNamedHookable
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		domain = NewMockNamedHookable(mockCtrl)
	})

	It("should do nothing when the domain has no hooks", func() {
		domain.EXPECT().Name().Return("walker_0").AnyTimes()
		domain.EXPECT().NumHooks().Return(0)

		StartTask("1", "", domain, "walker", "sweep", nil)
	})

	It("should invoke the start hook with the task", func() {
		domain.EXPECT().Name().Return("walker_0").AnyTimes()
		domain.EXPECT().NumHooks().Return(1)

		var captured hooking.HookCtx
		domain.EXPECT().
			InvokeHook(gomock.Any()).
			Do(func(ctx hooking.HookCtx) { captured = ctx })

		StartTask("1", "parent", domain, "walker", "sweep", nil)

		Expect(captured.Pos).To(BeIdenticalTo(HookPosTaskStart))
		task := captured.Item.(Task)
		Expect(task.ID).To(Equal("1"))
		Expect(task.ParentID).To(Equal("parent"))
		Expect(task.Kind).To(Equal("walker"))
		Expect(task.What).To(Equal("sweep"))
		Expect(task.Where).To(Equal("walker_0"))
	})

	It("should carry a custom location", func() {
		domain.EXPECT().Name().Return("solver").AnyTimes()
		domain.EXPECT().NumHooks().Return(1)

		var captured hooking.HookCtx
		domain.EXPECT().
			InvokeHook(gomock.Any()).
			Do(func(ctx hooking.HookCtx) { captured = ctx })

		StartTaskWithSpecificLocation(
			"1", "", domain, "accumulator", "measure", "accumulator_3", nil)

		Expect(captured.Item.(Task).Where).To(Equal("accumulator_3"))
	})

	It("should panic on a start missing required fields", func() {
		domain.EXPECT().Name().Return("walker_0").AnyTimes()
		domain.EXPECT().NumHooks().Return(1).AnyTimes()

		Expect(func() {
			StartTask("", "", domain, "walker", "sweep", nil)
		}).To(Panic())

		Expect(func() {
			StartTask("1", "", domain, "", "sweep", nil)
		}).To(Panic())

		Expect(func() {
			StartTask("1", "", domain, "walker", "", nil)
		}).To(Panic())
	})

	It("should invoke the end hook with the task ID", func() {
		domain.EXPECT().NumHooks().Return(1)

		var captured hooking.HookCtx
		domain.EXPECT().
			InvokeHook(gomock.Any()).
			Do(func(ctx hooking.HookCtx) { captured = ctx })

		EndTask("1", domain)

		Expect(captured.Pos).To(BeIdenticalTo(HookPosTaskEnd))
		Expect(captured.Item.(Task).ID).To(Equal("1"))
	})

	It("should register a collecting hook on the domain", func() {
		tracer := &capturingTracer{}
		domain.EXPECT().AcceptHook(gomock.Any())

		CollectTrace(domain, tracer)
	})
})

var _ = Describe("collectTraceHook", func() {
	It("should forward tasks to the tracer by position", func() {
		tracer := &capturingTracer{}
		hook := &collectTraceHook{tracer: tracer}

		hook.Func(hooking.HookCtx{
			Pos:  HookPosTaskStart,
			Item: Task{ID: "1", Kind: "walker"},
		})
		hook.Func(hooking.HookCtx{
			Pos:  HookPosTaskStep,
			Item: Task{ID: "1"},
		})
		hook.Func(hooking.HookCtx{
			Pos:  HookPosTaskEnd,
			Item: Task{ID: "1"},
		})
		hook.Func(hooking.HookCtx{
			Pos:  &hooking.HookPos{Name: "unrelated"},
			Item: Task{ID: "2"},
		})
		hook.Func(hooking.HookCtx{
			Pos:  HookPosTaskStart,
			Item: "not a task",
		})

		Expect(tracer.started).To(HaveLen(1))
		Expect(tracer.stepped).To(HaveLen(1))
		Expect(tracer.ended).To(HaveLen(1))
	})
})
