package main

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/config"
	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"
)

// 메일 유형별 템플릿 경로와 제목
var mailTemplates = map[string]struct {
	Path    string
	Subject string
}{
	"create_staff":     {"./templates/new_account_email.html", "GymMate 근무 스케줄러 - 계정 안내"},
	"reset_password":   {"./templates/reset_password_otp_email.html", "GymMate 근무 스케줄러 - 비밀번호 재설정"},
	"change_email":     {"./templates/change_email_email.html", "GymMate 근무 스케줄러 - 메일 주소 변경"},
	"schedule_changed": {"./templates/schedule_changed_email.html", "GymMate 근무 스케줄러 - 주간 스케줄 변경 안내"},
}

func main() {
	/**********************************************
	 * logger 생성
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * 설정 로드
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("설정을 읽을 수 없습니다", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * 메일 클라이언트 생성
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("메일 클라이언트를 만들 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// 메일 서버에 붙을 수 있는지 먼저 확인한다
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("메일 서버에 연결할 수 없습니다", slog.String("error", err.Error()))
		return
	}

	// gob 에 mail.Msg 타입을 등록해 둔다
	gob.Register(mail.NewMsg())

	/**********************************************
	 * RabbitMQ 연결
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("RabbitMQ 에 연결할 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	// 채널 생성
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("채널을 만들 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	// 큐 선언
	q, err := ch.QueueDeclare(
		"email_queue", // 큐 이름
		true,          // 지속성 여부
		false,         // 자동 삭제 여부. false 로 두면 소비자가 없어도 큐가 사라지지 않는다
		false,         // 독점 여부
		false,         // no-wait 여부. false 로 두고 큐 생성 확인을 기다린다
		nil,           // 추가 인자
	)
	if err != nil {
		logger.Error("큐를 선언할 수 없습니다", slog.String("error", err.Error()))
		return
	}

	// CTRL+C 감지
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// 메시지 소비
	msgs, err := ch.Consume(
		q.Name, // 큐
		"",     // 소비자 태그. 비워 두면 RabbitMQ 가 자동으로 할당한다
		false,  // 자동 ack 여부
		false,  // 독점 여부
		false,  // no-local. RabbitMQ 는 지원하지 않으므로 false
		false,  // no-wait 여부
		nil,    // 추가 인자
	)
	if err != nil {
		logger.Error("메시지를 소비할 수 없습니다", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// goroutine 종료용 컨텍스트
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("메시지 수신", slog.String("message", string(msg.Body)))
				// 메일 메시지 역직렬화
				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("메일 메시지 역직렬화 실패", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// 메일 구성
				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("발신자를 설정할 수 없습니다", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("수신자를 설정할 수 없습니다", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// 메일 유형에 맞는 템플릿을 고른다
				tmplInfo, exists := mailTemplates[mailMessage.Type]
				if !exists {
					logger.Error("지원하지 않는 메일 유형", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				tmpl, err := template.ParseFiles(tmplInfo.Path)
				if err != nil {
					logger.Error("메일 템플릿을 읽을 수 없습니다", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
					logger.Error("메일 본문을 설정할 수 없습니다", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				m.Subject(tmplInfo.Subject)

				// 메일 발송
				if err := client.DialAndSend(m); err != nil {
					logger.Error("메일 발송 실패", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // 큐에 다시 넣는다
					continue
				}

				// 메시지 확인
				_ = msg.Ack(false)
			}
		}
	}()

	// CTRL+C 신호 대기
	logger.Info("메시지를 기다리는 중... (CTRL+C 로 종료)")
	<-sigChan

	// 정상 종료
	slog.Info("mail worker 를 종료합니다...")
	cancel()
	wg.Wait() // 모든 goroutine 이 끝나기를 기다린다
	slog.Info("mail worker 가 정상적으로 종료되었습니다")
}
