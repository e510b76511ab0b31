package service_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hirely.app/api/common/id"
	"hirely.app/api/internal/model"
	"hirely.app/api/internal/service"
	"hirely.app/api/internal/store"
)

var _ = Describe("ConversationService", func() {
	var (
		ctx           context.Context
		svc           service.ConversationService
		conversations *mockConversationStore
		messages      *mockMessageStore
		companies     *mockCompanyStore
		users         *mockUserStore
		jobs          *mockJobStore
		notifications *mockNotificationService

		company = model.Principal{ID: 3, Role: model.RoleCompany, Name: "Acme"}
		seeker  = model.Principal{ID: 9, Role: model.RoleUser, Name: "Grace"}
		conv    = &model.Conversation{ID: 40, CompanyID: 3, UserID: 9}
	)

	BeforeEach(func() {
		ctx = context.Background()
		Expect(id.Init(1)).To(Succeed())

		conversations = &mockConversationStore{}
		messages = &mockMessageStore{}
		companies = &mockCompanyStore{}
		users = &mockUserStore{}
		jobs = &mockJobStore{}
		notifications = &mockNotificationService{}

		conversations.getForPrincipalFn = func(_ context.Context, convID int64, p model.Principal) (*model.Conversation, error) {
			if convID != conv.ID || !conv.Participant(p) {
				return nil, store.ErrNotFound
			}
			c := *conv
			return &c, nil
		}

		provider := &mockStoreProvider{conversations: conversations, messages: messages}
		svc = service.NewConversationService(conversations, messages, companies, users, jobs, notifications, passthroughTx(provider))
	})

	Describe("Start", func() {
		It("upserts the pair from the company side", func() {
			users.getByIDFn = func(context.Context, int64) (*model.User, error) {
				return &model.User{ID: 9}, nil
			}
			var upserted *model.Conversation
			conversations.upsertFn = func(_ context.Context, c *model.Conversation) error {
				upserted = c
				c.ID = 40
				return nil
			}
			c, err := svc.Start(ctx, company, service.StartConversationInput{CounterpartID: 9})
			Expect(err).NotTo(HaveOccurred())
			Expect(upserted.CompanyID).To(Equal(int64(3)))
			Expect(upserted.UserID).To(Equal(int64(9)))
			Expect(c.ID).To(Equal(int64(40)))
		})

		It("returns NotFound for a missing counterpart", func() {
			companies.getByIDFn = func(context.Context, int64) (*model.Company, error) {
				return nil, store.ErrNotFound
			}
			_, err := svc.Start(ctx, seeker, service.StartConversationInput{CounterpartID: 77})
			Expect(err).To(MatchError(service.ErrNotFound))
		})

		It("returns NotFound when the job belongs to another company", func() {
			companies.getByIDFn = func(context.Context, int64) (*model.Company, error) {
				return &model.Company{ID: 3}, nil
			}
			jobs.getForCompanyFn = func(context.Context, int64, int64) (*model.Job, error) {
				return nil, store.ErrNotFound
			}
			jobID := int64(5)
			_, err := svc.Start(ctx, seeker, service.StartConversationInput{CounterpartID: 3, JobID: &jobID})
			Expect(err).To(MatchError(service.ErrNotFound))
		})

		It("sends the opening message", func() {
			companies.getByIDFn = func(context.Context, int64) (*model.Company, error) {
				return &model.Company{ID: 3}, nil
			}
			conversations.upsertFn = func(_ context.Context, c *model.Conversation) error {
				c.ID = 40
				return nil
			}
			var sent *model.Message
			messages.createFn = func(_ context.Context, m *model.Message) error {
				sent = m
				return nil
			}
			_, err := svc.Start(ctx, seeker, service.StartConversationInput{CounterpartID: 3, Message: strPtr("Hello!")})
			Expect(err).NotTo(HaveOccurred())
			Expect(sent.Content).To(Equal("Hello!"))
			Expect(sent.SenderType).To(Equal(model.RoleUser))
		})
	})

	Describe("Send", func() {
		DescribeTable("validates content",
			func(content string) {
				_, err := svc.Send(ctx, seeker, conv.ID, content)
				Expect(errors.Is(err, service.ErrValidation)).To(BeTrue())
			},
			Entry("empty", ""),
			Entry("whitespace", " \n\t "),
			Entry("too long", strings.Repeat("a", 5001)),
		)

		It("accepts exactly 5000 characters", func() {
			_, err := svc.Send(ctx, seeker, conv.ID, strings.Repeat("a", 5000))
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns NotFound to a non-participant", func() {
			outsider := model.Principal{ID: 10, Role: model.RoleUser}
			_, err := svc.Send(ctx, outsider, conv.ID, "hi")
			Expect(err).To(MatchError(service.ErrNotFound))
		})

		It("stores the message, bumps the conversation and notifies the other side", func() {
			var touched int64
			conversations.touchFn = func(_ context.Context, convID int64) error {
				touched = convID
				return nil
			}
			msg, err := svc.Send(ctx, company, conv.ID, "  See you Monday  ")
			Expect(err).NotTo(HaveOccurred())
			Expect(msg.Content).To(Equal("See you Monday"))
			Expect(msg.SenderType).To(Equal(model.RoleCompany))
			Expect(touched).To(Equal(conv.ID))

			Expect(notifications.notified).To(HaveLen(1))
			role, owner := notifications.notified[0].Recipient()
			Expect(role).To(Equal(model.RoleUser))
			Expect(owner).To(Equal(int64(9)))
		})

		It("does not notify when the transaction fails", func() {
			conversations.touchFn = func(context.Context, int64) error {
				return errors.New("boom")
			}
			_, err := svc.Send(ctx, company, conv.ID, "hi")
			Expect(err).To(HaveOccurred())
			Expect(notifications.notified).To(BeEmpty())
		})
	})

	Describe("Open", func() {
		It("marks the counterpart's messages read before listing", func() {
			var order []string
			messages.markReadFn = func(_ context.Context, _ int64, sender model.Role) (int64, error) {
				Expect(sender).To(Equal(model.RoleCompany))
				order = append(order, "mark")
				return 2, nil
			}
			messages.listByConversationFn = func(context.Context, int64) ([]model.Message, error) {
				order = append(order, "list")
				return []model.Message{{ID: 1}, {ID: 2}}, nil
			}
			thread, err := svc.Open(ctx, seeker, conv.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(order).To(Equal([]string{"mark", "list"}))
			Expect(thread.Messages).To(HaveLen(2))
			Expect(thread.Conversation.ID).To(Equal(conv.ID))
		})

		It("fails when marking read fails", func() {
			messages.markReadFn = func(context.Context, int64, model.Role) (int64, error) {
				return 0, errors.New("boom")
			}
			_, err := svc.Open(ctx, seeker, conv.ID)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, service.ErrNotFound)).To(BeFalse())
		})
	})
})
