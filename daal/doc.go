// Package daal ist die Kern-Binding-Schicht: Identifier-Familien,
// konfigurierte Proxies und der Context, der native Handles scoped.
//
// Die Rechenkerne selbst liegen in der nativen Bibliothek (siehe Paket
// native); dieses Paket validiert Selektoren, reicht Codes unveraendert
// weiter und haelt die zurueckgegebenen Handles.
//
//	ctx, err := daal.Open()
//	if err != nil {
//		return err
//	}
//	defer ctx.Close()
//
//	layer, err := elu.NewBatch(ctx, daal.PrecisionOf[float32](), elu.DefaultDense)
package daal
