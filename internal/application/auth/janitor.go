package auth

import (
	"context"
	"time"
)

// RunJanitor borra las sesiones vencidas cada every hasta que ctx se cancela.
func (uc *AuthUseCase) RunJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			uc.purgeExpired(ctx)
		}
	}
}

func (uc *AuthUseCase) purgeExpired(ctx context.Context) {
	n, err := uc.sessions.DeleteExpired(ctx, uc.now())
	if err != nil {
		uc.log.Warn().Err(err).Msg("limpieza de sesiones falló")
		return
	}
	if n > 0 {
		uc.log.Debug().Int64("deleted", n).Msg("sesiones vencidas eliminadas")
	}
}
