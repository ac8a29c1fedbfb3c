package i18n

import "github.com/langowen/fxdash/internal/entities"

var translations = map[entities.Language]map[string]string{
	entities.LangEnglish: {
		KeyTitle:               "Currency Converter",
		KeyConvert:             "Convert",
		KeyConverting:          "Converting…",
		KeySwap:                "Swap currencies",
		KeyAmount:              "Amount",
		KeyConvertedAmount:     "Converted Amount",
		KeyRate:                "Rate",
		KeyDate:                "Date",
		KeyTrendTitle:          "Exchange Rate Trend",
		KeyNoData:              "No data available",
		KeyConversionHistory:   "Conversion History",
		KeyTime:                "Time",
		KeyFromTo:              "From → To",
		KeyErrLoadCurrencies:   "Failed to load currencies",
		KeyErrInvalidAmount:    "Amount must be greater than 0",
		KeyErrSameCurrency:     "Please select two different currencies",
		KeyErrConversionFailed: "Conversion failed",
	},
	entities.LangHindi: {
		KeyTitle:               "मुद्रा परिवर्तक",
		KeyConvert:             "परिवर्तित करें",
		KeyConverting:          "परिवर्तित हो रहा है…",
		KeySwap:                "मुद्राएँ बदलें",
		KeyAmount:              "राशि",
		KeyConvertedAmount:     "परिवर्तित राशि",
		KeyRate:                "दर",
		KeyDate:                "तारीख",
		KeyTrendTitle:          "विनिमय दर रुझान",
		KeyNoData:              "कोई डेटा उपलब्ध नहीं",
		KeyConversionHistory:   "परिवर्तन इतिहास",
		KeyTime:                "समय",
		KeyFromTo:              "से → तक",
		KeyErrLoadCurrencies:   "मुद्राएँ लोड नहीं हो सकीं",
		KeyErrInvalidAmount:    "राशि 0 से अधिक होनी चाहिए",
		KeyErrSameCurrency:     "दो अलग-अलग मुद्राएँ चुनें",
		KeyErrConversionFailed: "परिवर्तन विफल",
	},
	entities.LangFrench: {
		KeyTitle:               "Convertisseur de devises",
		KeyConvert:             "Convertir",
		KeyConverting:          "Conversion…",
		KeySwap:                "Échanger les devises",
		KeyAmount:              "Montant",
		KeyConvertedAmount:     "Montant converti",
		KeyRate:                "Taux",
		KeyDate:                "Date",
		KeyTrendTitle:          "Tendance du taux",
		KeyNoData:              "Aucune donnée disponible",
		KeyConversionHistory:   "Historique des conversions",
		KeyTime:                "Heure",
		KeyFromTo:              "De → À",
		KeyErrLoadCurrencies:   "Échec du chargement des devises",
		KeyErrInvalidAmount:    "Le montant doit être supérieur à 0",
		KeyErrSameCurrency:     "Sélectionnez deux devises différentes",
		KeyErrConversionFailed: "Échec de la conversion",
	},
	entities.LangSpanish: {
		KeyTitle:               "Convertidor de divisas",
		KeyConvert:             "Convertir",
		KeyConverting:          "Convirtiendo…",
		KeySwap:                "Intercambiar monedas",
		KeyAmount:              "Cantidad",
		KeyConvertedAmount:     "Cantidad convertida",
		KeyRate:                "Tasa",
		KeyDate:                "Fecha",
		KeyTrendTitle:          "Tendencia del tipo de cambio",
		KeyNoData:              "No hay datos disponibles",
		KeyConversionHistory:   "Historial de conversiones",
		KeyTime:                "Hora",
		KeyFromTo:              "De → A",
		KeyErrLoadCurrencies:   "Error al cargar monedas",
		KeyErrInvalidAmount:    "El monto debe ser mayor que 0",
		KeyErrSameCurrency:     "Seleccione dos monedas diferentes",
		KeyErrConversionFailed: "Error en la conversión",
	},
	entities.LangGerman: {
		KeyTitle:               "Währungsrechner",
		KeyConvert:             "Umrechnen",
		KeyConverting:          "Wird umgerechnet…",
		KeySwap:                "Währungen tauschen",
		KeyAmount:              "Betrag",
		KeyConvertedAmount:     "Umgerechneter Betrag",
		KeyRate:                "Kurs",
		KeyDate:                "Datum",
		KeyTrendTitle:          "Wechselkursverlauf",
		KeyNoData:              "Keine Daten verfügbar",
		KeyConversionHistory:   "Umrechnungshistorie",
		KeyTime:                "Zeit",
		KeyFromTo:              "Von → Zu",
		KeyErrLoadCurrencies:   "Währungen konnten nicht geladen werden",
		KeyErrInvalidAmount:    "Betrag muss größer als 0 sein",
		KeyErrSameCurrency:     "Bitte zwei verschiedene Währungen wählen",
		KeyErrConversionFailed: "Umrechnung fehlgeschlagen",
	},
	entities.LangItalian: {
		KeyTitle:               "Convertitore di valuta",
		KeyConvert:             "Converti",
		KeyConverting:          "Conversione…",
		KeySwap:                "Scambia valute",
		KeyAmount:              "Importo",
		KeyConvertedAmount:     "Importo convertito",
		KeyRate:                "Tasso",
		KeyDate:                "Data",
		KeyTrendTitle:          "Andamento del cambio",
		KeyNoData:              "Nessun dato disponibile",
		KeyConversionHistory:   "Storico conversioni",
		KeyTime:                "Ora",
		KeyFromTo:              "Da → A",
		KeyErrLoadCurrencies:   "Errore nel caricamento valute",
		KeyErrInvalidAmount:    "L'importo deve essere maggiore di 0",
		KeyErrSameCurrency:     "Seleziona due valute diverse",
		KeyErrConversionFailed: "Conversione fallita",
	},
	entities.LangPortuguese: {
		KeyTitle:               "Conversor de moedas",
		KeyConvert:             "Converter",
		KeyConverting:          "Convertendo…",
		KeySwap:                "Trocar moedas",
		KeyAmount:              "Valor",
		KeyConvertedAmount:     "Valor convertido",
		KeyRate:                "Taxa",
		KeyDate:                "Data",
		KeyTrendTitle:          "Tendência da taxa",
		KeyNoData:              "Nenhum dado disponível",
		KeyConversionHistory:   "Histórico de conversões",
		KeyTime:                "Hora",
		KeyFromTo:              "De → Para",
		KeyErrLoadCurrencies:   "Falha ao carregar moedas",
		KeyErrInvalidAmount:    "O valor deve ser maior que 0",
		KeyErrSameCurrency:     "Selecione duas moedas diferentes",
		KeyErrConversionFailed: "Falha na conversão",
	},
	entities.LangRussian: {
		KeyTitle:               "Конвертер валют",
		KeyConvert:             "Конвертировать",
		KeyConverting:          "Конвертация…",
		KeySwap:                "Поменять валюты",
		KeyAmount:              "Сумма",
		KeyConvertedAmount:     "Конвертированная сумма",
		KeyRate:                "Курс",
		KeyDate:                "Дата",
		KeyTrendTitle:          "Динамика курса",
		KeyNoData:              "Нет данных",
		KeyConversionHistory:   "История конверсий",
		KeyTime:                "Время",
		KeyFromTo:              "Из → В",
		KeyErrLoadCurrencies:   "Не удалось загрузить валюты",
		KeyErrInvalidAmount:    "Сумма должна быть больше 0",
		KeyErrSameCurrency:     "Выберите разные валюты",
		KeyErrConversionFailed: "Ошибка конвертации",
	},
	entities.LangChinese: {
		KeyTitle:               "货币转换器",
		KeyConvert:             "转换",
		KeyConverting:          "转换中…",
		KeySwap:                "交换货币",
		KeyAmount:              "金额",
		KeyConvertedAmount:     "转换后金额",
		KeyRate:                "汇率",
		KeyDate:                "日期",
		KeyTrendTitle:          "汇率趋势",
		KeyNoData:              "暂无数据",
		KeyConversionHistory:   "转换历史",
		KeyTime:                "时间",
		KeyFromTo:              "从 → 到",
		KeyErrLoadCurrencies:   "无法加载货币",
		KeyErrInvalidAmount:    "金额必须大于0",
		KeyErrSameCurrency:     "请选择不同的货币",
		KeyErrConversionFailed: "转换失败",
	},
	entities.LangArabic: {
		KeyTitle:               "محول العملات",
		KeyConvert:             "تحويل",
		KeyConverting:          "جاري التحويل…",
		KeySwap:                "تبديل العملات",
		KeyAmount:              "المبلغ",
		KeyConvertedAmount:     "المبلغ المحول",
		KeyRate:                "السعر",
		KeyDate:                "التاريخ",
		KeyTrendTitle:          "اتجاه سعر الصرف",
		KeyNoData:              "لا توجد بيانات",
		KeyConversionHistory:   "سجل التحويلات",
		KeyTime:                "الوقت",
		KeyFromTo:              "من → إلى",
		KeyErrLoadCurrencies:   "فشل تحميل العملات",
		KeyErrInvalidAmount:    "يجب أن يكون المبلغ أكبر من 0",
		KeyErrSameCurrency:     "يرجى اختيار عملتين مختلفتين",
		KeyErrConversionFailed: "فشل التحويل",
	},
}
